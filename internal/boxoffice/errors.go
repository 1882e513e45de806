package boxoffice

import (
	"errors"

	"github.com/iliyamo/cinema-box-office/internal/repository"
)

// Store errors surfaced unchanged by the Office.
var (
	ErrHouseNotFound   = repository.ErrHouseNotFound
	ErrTicketNotFound  = repository.ErrTicketNotFound
	ErrSeatUnavailable = repository.ErrSeatUnavailable
	ErrSeatOutOfPlan   = repository.ErrSeatOutOfPlan
)

// Houses.
var (
	ErrInvalidHouseSize = errors.New("rows must be 1-99 and columns 1-26")
	ErrNoMovie          = errors.New("house has no movie")
	ErrMovieTooLong     = errors.New("movie title longer than 255 characters")
)

// Override commands.
var (
	ErrEmptyCommand       = errors.New("empty command")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrUnknownAction      = errors.New("unknown action")
	ErrInvalidHouseNumber = errors.New("invalid house number")
)

// Seat selection.
var (
	ErrInvalidTicketCount  = errors.New("ticket count must be at least 1")
	ErrInvalidTicketKind   = errors.New("unknown ticket kind")
	ErrSeatTaken           = errors.New("seat already taken")
	ErrSeatAlreadySelected = errors.New("seat already selected")
	ErrTooManySeats        = errors.New("more seats than tickets")
	ErrSelectionIncomplete = errors.New("fewer seats than tickets")
)

// Ticket numbers, in the order they are checked.
var (
	ErrEmptyTicketNumber        = errors.New("empty ticket number")
	ErrTicketNumberPrefix       = errors.New("ticket number must start with 'T'")
	ErrTicketNumberNoDigits     = errors.New("ticket number has no digits")
	ErrTicketNumberTooShort     = errors.New("ticket number too short")
	ErrTicketNumberNotDecimal   = errors.New("ticket number must be 'T' followed by digits")
	ErrTicketNumberLeadingZeros = errors.New("ticket number has more than 4 leading zeros")
	ErrTicketNumberAllZero      = errors.New("ticket number is all zero")
)
