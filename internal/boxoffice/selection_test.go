package boxoffice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

func testHouse() *model.House {
	h := &model.House{Number: 1, Rows: 4, Columns: 4, Movie: "Heat", Plan: model.NewPlan(4, 4)}
	h.Plan[0][0] = model.SeatSold
	h.Plan[3][3] = model.SeatReserved
	return h
}

func TestSelection(t *testing.T) {
	s, err := NewSelection(testHouse(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Remaining())

	added, err := s.Add("2a:2d")
	require.NoError(t, err)
	assert.Len(t, added, 4)
	assert.Equal(t, 1, s.Remaining())
	assert.False(t, s.Complete())

	_, err = s.Add("3A:3B")
	assert.ErrorIs(t, err, ErrTooManySeats)
	assert.Equal(t, 1, s.Remaining())

	_, err = s.Add("3A")
	require.NoError(t, err)
	assert.True(t, s.Complete())
	assert.Equal(t, coorexpr.Coordinate{Row: 2, Column: 0}, s.Seats()[4])
}

func TestSelection_AllOrNothing(t *testing.T) {
	s, err := NewSelection(testHouse(), 10)
	require.NoError(t, err)

	_, err = s.Add("1A:1C")
	assert.ErrorIs(t, err, ErrSeatTaken)
	_, err = s.Add("4C:4D")
	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Empty(t, s.Seats())

	_, err = s.Add("2B")
	require.NoError(t, err)
	_, err = s.Add("2A:2C")
	assert.ErrorIs(t, err, ErrSeatAlreadySelected)
	assert.Len(t, s.Seats(), 1)

	_, err = s.Add("")
	assert.ErrorIs(t, err, coorexpr.ErrEmptyCoordinate)
}

func TestNewSelection_Count(t *testing.T) {
	_, err := NewSelection(testHouse(), 0)
	assert.ErrorIs(t, err, ErrInvalidTicketCount)
}
