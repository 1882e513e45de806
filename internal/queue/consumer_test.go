package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-box-office/internal/model"
)

func TestNewTicketEvent(t *testing.T) {
	tk := &model.Ticket{Index: 7, HouseNumber: 2, Movie: "Alien", Row: 11, Column: 0, Kind: model.TicketChild, PriceCents: 550}
	ev := NewTicketEvent(TicketIssued, tk, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "T00007", ev.TicketNumber)
	assert.Equal(t, "12A", ev.Seat)
	assert.Equal(t, "2026-03-01T12:00:00Z", ev.OccurredAt)
}

func TestHandleMessage_AppendsLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	for _, typ := range []string{TicketIssued, TicketRefunded} {
		body, err := json.Marshal(TicketEvent{
			Type: typ, TicketNumber: "T00001", HouseNumber: 1, Movie: "Heat",
			Seat: "3C", Kind: model.TicketAdult, PriceCents: 1000, OccurredAt: "2026-01-01T00:00:00Z",
		})
		require.NoError(t, err)
		require.NoError(t, handleMessage(dir, body))
	}

	data, err := os.ReadFile(filepath.Join(dir, TicketLogFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `[2026-01-01T00:00:00Z] ticket.issued | ticket=T00001 | house=1 | movie="Heat" | seat=3C | kind=ADULT | price=1000 cents`, lines[0])
	assert.Contains(t, lines[1], "ticket.refunded")
}

func TestHandleMessage_RejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, handleMessage(dir, []byte("{not json")))
	assert.Error(t, handleMessage(dir, []byte(`{"type":""}`)))
	_, err := os.Stat(filepath.Join(dir, TicketLogFile))
	assert.True(t, os.IsNotExist(err))
}
