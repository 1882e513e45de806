package model

// SeatStatus is the state of one seat in a house's seating plan.
type SeatStatus string

const (
	SeatEmpty    SeatStatus = "EMPTY"
	SeatSold     SeatStatus = "SOLD"
	SeatReserved SeatStatus = "RESERVED"
)

// Valid reports whether s is one of the known statuses.
func (s SeatStatus) Valid() bool {
	switch s {
	case SeatEmpty, SeatSold, SeatReserved:
		return true
	}
	return false
}

// Symbol is the single character used on a printed seating chart.
func (s SeatStatus) Symbol() byte {
	switch s {
	case SeatSold:
		return 'X'
	case SeatReserved:
		return '!'
	}
	return ' '
}
