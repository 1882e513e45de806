// Package repository defines error types that are reused across multiple
// repositories and by the in-memory store.  These sentinel values allow
// higher layers such as the box office and the handlers to distinguish
// between failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrHouseNotFound is returned when a house lookup fails.
var ErrHouseNotFound = errors.New("house not found")

// ErrTicketNotFound is returned when a ticket lookup fails.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrSeatUnavailable is returned by SellSeats when at least one of the
// requested seats is no longer empty.  Nothing is sold in that case.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrSeatOutOfPlan is returned when a coordinate does not exist in the
// house's seating plan.
var ErrSeatOutOfPlan = errors.New("seat outside seating plan")

// ErrInvalidSeatStatus is returned by SetSeatStatus for a status that is not
// one of the known seat statuses.
var ErrInvalidSeatStatus = errors.New("invalid seat status")

// ErrEmailExists is returned when registering an address twice.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup fails.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidRefresh is returned for unknown, revoked or expired refresh tokens.
var ErrInvalidRefresh = errors.New("invalid refresh token")
