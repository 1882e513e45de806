package model

import (
	"time"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
)

// Size limits of a house.  Columns are single letters, so at most 26.
const (
	MaxRows    = 99
	MaxColumns = 26
)

// MaxMovieLength is the longest movie title, in characters, that fits the
// movie columns.
const MaxMovieLength = 255

// House is a screening room with a rectangular seating plan.
type House struct {
	Number          uint64         `json:"number"` // 1-based, shown to staff
	Rows            int            `json:"rows"`
	Columns         int            `json:"columns"`
	Movie           string         `json:"movie"` // empty when none is assigned
	AdultPriceCents uint32         `json:"adult_price_cents"`
	ChildPriceCents uint32         `json:"child_price_cents"`
	RevenueCents    uint64         `json:"revenue_cents"` // accumulated ticket revenue
	Plan            [][]SeatStatus `json:"plan,omitempty"` // Plan[row][column]
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewPlan returns a rows x columns plan with every seat empty.
func NewPlan(rows, columns int) [][]SeatStatus {
	plan := make([][]SeatStatus, rows)
	for r := range plan {
		plan[r] = make([]SeatStatus, columns)
		for c := range plan[r] {
			plan[r][c] = SeatEmpty
		}
	}
	return plan
}

// Capacity is the total number of seats.
func (h *House) Capacity() int { return h.Rows * h.Columns }

// Available counts empty seats.
func (h *House) Available() int {
	n := 0
	for _, row := range h.Plan {
		for _, s := range row {
			if s == SeatEmpty {
				n++
			}
		}
	}
	return n
}

// Playing reports whether a movie is assigned.
func (h *House) Playing() bool { return h.Movie != "" }

// Status returns the status of the seat at c.  Coordinates outside the plan
// report the zero SeatStatus, which is not SeatEmpty and fails Valid.
func (h *House) Status(c coorexpr.Coordinate) SeatStatus {
	if c.Row < 0 || c.Row >= len(h.Plan) || c.Column < 0 || c.Column >= len(h.Plan[c.Row]) {
		return ""
	}
	return h.Plan[c.Row][c.Column]
}

// Price returns the ticket price for kind.
func (h *House) Price(kind TicketKind) uint32 {
	if kind == TicketChild {
		return h.ChildPriceCents
	}
	return h.AdultPriceCents
}

// Summary is the house without its plan, used in listings.
type Summary struct {
	Number    uint64 `json:"number"`
	Movie     string `json:"movie"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
	Available int    `json:"available"`
	Capacity  int    `json:"capacity"`
}

// Summarize builds the listing view of h.
func (h *House) Summarize() Summary {
	return Summary{
		Number:    h.Number,
		Movie:     h.Movie,
		Rows:      h.Rows,
		Columns:   h.Columns,
		Available: h.Available(),
		Capacity:  h.Capacity(),
	}
}
