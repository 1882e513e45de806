package boxoffice

import (
	"fmt"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// Selection collects the seats for one purchase of count tickets.  Seats
// are added one coordinate expression at a time, checked against a snapshot
// of the house plan.
type Selection struct {
	house  *model.House
	count  int
	seats  []coorexpr.Coordinate
	chosen map[coorexpr.Coordinate]bool
}

// NewSelection starts a selection of count seats in h.
func NewSelection(h *model.House, count int) (*Selection, error) {
	if count < 1 {
		return nil, ErrInvalidTicketCount
	}
	return &Selection{house: h, count: count, chosen: map[coorexpr.Coordinate]bool{}}, nil
}

// Add expands expr and selects every seat it covers.  Nothing is selected
// when any seat is taken, already selected, or would exceed the count.
func (s *Selection) Add(expr string) ([]coorexpr.Coordinate, error) {
	seats, err := coorexpr.Seats(expr, s.house.Rows, s.house.Columns)
	if err != nil {
		return nil, err
	}
	for _, c := range seats {
		if s.house.Status(c) != model.SeatEmpty {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, c)
		}
		if s.chosen[c] {
			return nil, fmt.Errorf("%w: %s", ErrSeatAlreadySelected, c)
		}
	}
	if len(seats) > s.Remaining() {
		return nil, fmt.Errorf("%w: %d seats, %d left", ErrTooManySeats, len(seats), s.Remaining())
	}
	for _, c := range seats {
		s.chosen[c] = true
	}
	s.seats = append(s.seats, seats...)
	return seats, nil
}

// Remaining is the number of seats still to choose.
func (s *Selection) Remaining() int { return s.count - len(s.seats) }

// Complete reports whether exactly count seats are selected.
func (s *Selection) Complete() bool { return s.Remaining() == 0 }

// Seats returns the selected seats in the order they were added.
func (s *Selection) Seats() []coorexpr.Coordinate {
	return append([]coorexpr.Coordinate(nil), s.seats...)
}
