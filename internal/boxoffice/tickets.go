package boxoffice

import (
	"context"
	"fmt"
	"log"

	"github.com/iliyamo/cinema-box-office/internal/model"
	"github.com/iliyamo/cinema-box-office/internal/queue"
)

// BuyRequest asks for Count tickets in House.  Expressions are added to a
// Selection in order and must cover exactly Count seats.  An empty Kind
// means adult.
type BuyRequest struct {
	House       uint64
	Count       int
	Expressions []string
	Kind        model.TicketKind
}

// BuyTickets sells the requested seats.  Either every seat is sold, one
// ticket each, or nothing is.
func (o *Office) BuyTickets(ctx context.Context, req BuyRequest) ([]*model.Ticket, error) {
	kind := req.Kind
	switch kind {
	case "":
		kind = model.TicketAdult
	case model.TicketAdult, model.TicketChild:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTicketKind, req.Kind)
	}
	h, err := o.store.GetHouse(ctx, req.House)
	if err != nil {
		return nil, err
	}
	if !h.Playing() {
		return nil, ErrNoMovie
	}
	sel, err := NewSelection(h, req.Count)
	if err != nil {
		return nil, err
	}
	for _, expr := range req.Expressions {
		if _, err := sel.Add(expr); err != nil {
			return nil, err
		}
	}
	if !sel.Complete() {
		return nil, fmt.Errorf("%w: %d of %d seats selected", ErrSelectionIncomplete, req.Count-sel.Remaining(), req.Count)
	}
	tickets, err := o.store.SellSeats(ctx, h.Number, sel.Seats(), kind, o.now())
	if err != nil {
		return nil, err
	}
	log.Printf("box-office: house %d sold %d %s tickets", h.Number, len(tickets), kind)
	o.publish(ctx, queue.TicketIssued, tickets...)
	return tickets, nil
}

// GetTicket looks a ticket up by its printed number.
func (o *Office) GetTicket(ctx context.Context, number string) (*model.Ticket, error) {
	idx, err := ParseTicketNumber(number)
	if err != nil {
		return nil, err
	}
	return o.store.GetTicket(ctx, idx)
}

// ListTickets returns every active ticket by index.
func (o *Office) ListTickets(ctx context.Context) ([]*model.Ticket, error) {
	return o.store.ListTickets(ctx)
}

// Stats reports ticket totals and revenue.
func (o *Office) Stats(ctx context.Context) (model.TicketStats, error) {
	return o.store.TicketStats(ctx)
}

// RefundTicket removes a ticket and frees its seat.
func (o *Office) RefundTicket(ctx context.Context, number string) (*model.Ticket, error) {
	idx, err := ParseTicketNumber(number)
	if err != nil {
		return nil, err
	}
	t, err := o.store.RefundTicket(ctx, idx)
	if err != nil {
		return nil, err
	}
	log.Printf("box-office: %s refunded, house %d seat %s emptied", t.Number(), t.HouseNumber, t.Seat())
	o.publish(ctx, queue.TicketRefunded, t)
	return t, nil
}

// DeleteTicket removes a ticket and leaves its seat as it is.
func (o *Office) DeleteTicket(ctx context.Context, number string) (*model.Ticket, error) {
	idx, err := ParseTicketNumber(number)
	if err != nil {
		return nil, err
	}
	t, err := o.store.DeleteTicket(ctx, idx)
	if err != nil {
		return nil, err
	}
	log.Printf("box-office: %s deleted", t.Number())
	o.publish(ctx, queue.TicketDeleted, t)
	return t, nil
}
