// Package boxoffice implements the cinema box office: houses and their
// seating plans, ticket sales and refunds, and the admin seat override.
// All state lives behind a Store; the Office itself is stateless and safe
// for concurrent use.
package boxoffice

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
	"github.com/iliyamo/cinema-box-office/internal/queue"
)

// Store persists houses and tickets.  Implementations must make SellSeats,
// RefundTicket, UpdateHouse, ResetHouse and DeleteHouse atomic.
type Store interface {
	CreateHouse(ctx context.Context, h *model.House) error
	GetHouse(ctx context.Context, number uint64) (*model.House, error)
	ListHouses(ctx context.Context) ([]*model.House, error)
	UpdateHouse(ctx context.Context, h *model.House, reset bool) (int, error)
	ResetHouse(ctx context.Context, number uint64) (int, error)
	DeleteHouse(ctx context.Context, number uint64) (int, error)
	SetSeatStatus(ctx context.Context, number uint64, seats []coorexpr.Coordinate, status model.SeatStatus) error

	SellSeats(ctx context.Context, number uint64, seats []coorexpr.Coordinate, kind model.TicketKind, at time.Time) ([]*model.Ticket, error)
	GetTicket(ctx context.Context, index uint64) (*model.Ticket, error)
	ListTickets(ctx context.Context) ([]*model.Ticket, error)
	DeleteTicket(ctx context.Context, index uint64) (*model.Ticket, error)
	RefundTicket(ctx context.Context, index uint64) (*model.Ticket, error)
	TicketStats(ctx context.Context) (model.TicketStats, error)
}

// EventPublisher receives ticket events.  Publishing is best effort.
type EventPublisher interface {
	PublishTicketEvent(ctx context.Context, ev queue.TicketEvent) error
}

// Office coordinates the store and the event publisher.
type Office struct {
	store Store
	pub   EventPublisher
	now   func() time.Time
}

// Option customizes an Office.
type Option func(*Office)

// WithPublisher sends ticket events to p.
func WithPublisher(p EventPublisher) Option { return func(o *Office) { o.pub = p } }

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(o *Office) { o.now = now } }

// New returns an Office over store.
func New(store Store, opts ...Option) *Office {
	o := &Office{store: store, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CreateHouse adds a house with an all-empty plan.  Movie and prices set in
// u are stored with the house; unset fields stay zero.
func (o *Office) CreateHouse(ctx context.Context, rows, columns int, u HouseUpdate) (*model.House, error) {
	if rows < 1 || rows > model.MaxRows || columns < 1 || columns > model.MaxColumns {
		return nil, ErrInvalidHouseSize
	}
	h := &model.House{Rows: rows, Columns: columns}
	if err := u.apply(h); err != nil {
		return nil, err
	}
	if err := o.store.CreateHouse(ctx, h); err != nil {
		return nil, err
	}
	log.Printf("box-office: house %d created (%dx%d)", h.Number, rows, columns)
	return h, nil
}

func (o *Office) GetHouse(ctx context.Context, number uint64) (*model.House, error) {
	return o.store.GetHouse(ctx, number)
}

func (o *Office) ListHouses(ctx context.Context) ([]*model.House, error) {
	return o.store.ListHouses(ctx)
}

// HouseUpdate holds the fields to change; nil fields are left alone.
type HouseUpdate struct {
	Movie           *string
	AdultPriceCents *uint32
	ChildPriceCents *uint32
}

// apply copies the set fields of u into h.  h is untouched on error.
func (u HouseUpdate) apply(h *model.House) error {
	if u.Movie != nil {
		if utf8.RuneCountInString(*u.Movie) > model.MaxMovieLength {
			return ErrMovieTooLong
		}
		h.Movie = *u.Movie
	}
	if u.AdultPriceCents != nil {
		h.AdultPriceCents = *u.AdultPriceCents
	}
	if u.ChildPriceCents != nil {
		h.ChildPriceCents = *u.ChildPriceCents
	}
	return nil
}

// UpdateHouse applies u.  Changing the movie clears the seating plan and
// removes the house's tickets in the same store write as the new movie;
// the number of removed tickets is returned.
func (o *Office) UpdateHouse(ctx context.Context, number uint64, u HouseUpdate) (*model.House, int, error) {
	h, err := o.store.GetHouse(ctx, number)
	if err != nil {
		return nil, 0, err
	}
	old := h.Movie
	if err := u.apply(h); err != nil {
		return nil, 0, err
	}
	changed := h.Movie != old
	removed, err := o.store.UpdateHouse(ctx, h, changed)
	if err != nil {
		return nil, 0, err
	}
	if changed {
		log.Printf("box-office: house %d movie %q -> %q, %d tickets removed", number, old, h.Movie, removed)
	}
	h, err = o.store.GetHouse(ctx, number)
	return h, removed, err
}

// ClearHouse empties every seat and removes the house's tickets.
func (o *Office) ClearHouse(ctx context.Context, number uint64) (int, error) {
	n, err := o.store.ResetHouse(ctx, number)
	if err != nil {
		return 0, err
	}
	log.Printf("box-office: house %d cleared, %d tickets removed", number, n)
	return n, nil
}

// DeleteHouse removes a house together with its tickets.
func (o *Office) DeleteHouse(ctx context.Context, number uint64) (int, error) {
	n, err := o.store.DeleteHouse(ctx, number)
	if err != nil {
		return 0, err
	}
	log.Printf("box-office: house %d deleted, %d tickets removed", number, n)
	return n, nil
}

func (o *Office) publish(ctx context.Context, typ string, tickets ...*model.Ticket) {
	if o.pub == nil {
		return
	}
	at := o.now()
	for _, t := range tickets {
		if err := o.pub.PublishTicketEvent(ctx, queue.NewTicketEvent(typ, t, at)); err != nil {
			log.Printf("box-office: publish %s for %s failed: %v", typ, t.Number(), err)
		}
	}
}
