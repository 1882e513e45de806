package model

import (
	"fmt"
	"time"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
)

// TicketKind selects which house price applies.
type TicketKind string

const (
	TicketAdult TicketKind = "ADULT"
	TicketChild TicketKind = "CHILD"
)

// Ticket is one sold seat.  Index is assigned by the store and never reused.
type Ticket struct {
	Index       uint64     `json:"index"`
	IssuedAt    time.Time  `json:"issued_at"`
	HouseNumber uint64     `json:"house_number"`
	Movie       string     `json:"movie"`
	Row         int        `json:"row"`
	Column      int        `json:"column"`
	Kind        TicketKind `json:"kind"`
	PriceCents  uint32     `json:"price_cents"`
}

// FormatTicketNumber renders an index as a ticket number, e.g. 42 -> "T00042".
func FormatTicketNumber(index uint64) string {
	return fmt.Sprintf("T%05d", index)
}

// Number is the ticket number printed for customers.
func (t *Ticket) Number() string { return FormatTicketNumber(t.Index) }

// Coordinate returns the seat position.
func (t *Ticket) Coordinate() coorexpr.Coordinate {
	return coorexpr.Coordinate{Row: t.Row, Column: t.Column}
}

// Seat is the seat label, e.g. "12A".
func (t *Ticket) Seat() string { return t.Coordinate().String() }

// TicketStats aggregates ticket counters across all houses.
type TicketStats struct {
	Active       int    `json:"active"`
	Issued       uint64 `json:"issued"`
	RevenueCents uint64 `json:"revenue_cents"`
}
