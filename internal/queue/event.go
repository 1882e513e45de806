// Package queue defines message payloads exchanged over the message broker
// and the consumer that journals them.
package queue

import (
	"time"

	"github.com/iliyamo/cinema-box-office/internal/model"
)

// TicketEventsQueue is the durable queue carrying every TicketEvent.
const TicketEventsQueue = "ticket.events"

// Ticket event types.
const (
	TicketIssued   = "ticket.issued"
	TicketRefunded = "ticket.refunded"
	TicketDeleted  = "ticket.deleted"
)

// TicketEvent is published whenever a ticket is issued, refunded or deleted.
// It carries enough to write the ticket journal without reading the store.
type TicketEvent struct {
	Type         string           `json:"type"`
	TicketNumber string           `json:"ticket_number"`
	HouseNumber  uint64           `json:"house_number"`
	Movie        string           `json:"movie"`
	Seat         string           `json:"seat"`
	Kind         model.TicketKind `json:"kind"`
	PriceCents   uint32           `json:"price_cents"`
	OccurredAt   string           `json:"occurred_at"`
}

// NewTicketEvent builds the event of the given type for t.
func NewTicketEvent(typ string, t *model.Ticket, at time.Time) TicketEvent {
	return TicketEvent{
		Type:         typ,
		TicketNumber: t.Number(),
		HouseNumber:  t.HouseNumber,
		Movie:        t.Movie,
		Seat:         t.Seat(),
		Kind:         t.Kind,
		PriceCents:   t.PriceCents,
		OccurredAt:   at.UTC().Format(time.RFC3339),
	}
}
