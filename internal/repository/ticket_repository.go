package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// TicketRepo persists tickets.  Ticket indexes come from the `counters`
// row named "tickets" so that they keep increasing after deletions.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = `ticket_index, issued_at, house_number, movie, row_index, column_index, kind, price_cents`

func scanTicket(row interface{ Scan(...interface{}) error }, t *model.Ticket) error {
	var kind string
	if err := row.Scan(&t.Index, &t.IssuedAt, &t.HouseNumber, &t.Movie, &t.Row, &t.Column, &kind, &t.PriceCents); err != nil {
		return err
	}
	t.Kind = model.TicketKind(kind)
	return nil
}

// SellSeats marks the given seats SOLD and issues one ticket per seat, in
// the order given.  The movie and price are read from the locked house row.
// If any seat is not EMPTY the transaction is rolled back and
// ErrSeatUnavailable is returned.
func (r *TicketRepo) SellSeats(ctx context.Context, number uint64, seats []coorexpr.Coordinate, kind model.TicketKind, at time.Time) (out []*model.Ticket, err error) {
	seats = dedupe(seats)
	if len(seats) == 0 {
		return nil, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var h model.House
	err = scanHouse(tx.QueryRowContext(ctx, `SELECT `+houseColumns+` FROM houses WHERE number = ? FOR UPDATE`, number), &h)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	clause, args := seatTupleClause(seats)
	var empty int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seats WHERE house_number = ? AND status = ? AND `+clause,
		append([]interface{}{number, model.SeatEmpty}, args...)...).Scan(&empty); err != nil {
		return nil, err
	}
	if empty != len(seats) {
		return nil, ErrSeatUnavailable
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE seats SET status = ? WHERE house_number = ? AND `+clause,
		append([]interface{}{model.SeatSold, number}, args...)...); err != nil {
		return nil, err
	}

	// reserve a contiguous block of ticket indexes
	res, err := tx.ExecContext(ctx,
		`UPDATE counters SET value = LAST_INSERT_ID(value + ?) WHERE name = 'tickets'`, len(seats))
	if err != nil {
		return nil, err
	}
	last, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	first := uint64(last) - uint64(len(seats)) + 1

	price := h.Price(kind)
	query := `INSERT INTO tickets (` + ticketColumns + `) VALUES `
	ins := make([]interface{}, 0, len(seats)*8)
	for i, s := range seats {
		t := &model.Ticket{
			Index:       first + uint64(i),
			IssuedAt:    at.UTC(),
			HouseNumber: number,
			Movie:       h.Movie,
			Row:         s.Row,
			Column:      s.Column,
			Kind:        kind,
			PriceCents:  price,
		}
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?, ?)"
		ins = append(ins, t.Index, t.IssuedAt, t.HouseNumber, t.Movie, t.Row, t.Column, string(t.Kind), t.PriceCents)
		out = append(out, t)
	}
	if _, err = tx.ExecContext(ctx, query, ins...); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE houses SET revenue_cents = revenue_cents + ? WHERE number = ?`,
		uint64(price)*uint64(len(seats)), number); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTicket fetches a ticket by index.
func (r *TicketRepo) GetTicket(ctx context.Context, index uint64) (*model.Ticket, error) {
	var t model.Ticket
	err := scanTicket(r.db.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE ticket_index = ?`, index), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListTickets returns all active tickets ordered by index.
func (r *TicketRepo) ListTickets(ctx context.Context) ([]*model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY ticket_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Ticket
	for rows.Next() {
		t := new(model.Ticket)
		if err := scanTicket(rows, t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTicket removes a ticket without touching its seat.
func (r *TicketRepo) DeleteTicket(ctx context.Context, index uint64) (*model.Ticket, error) {
	return r.removeTicket(ctx, index, false)
}

// RefundTicket removes a ticket, empties its seat and takes the price off
// the house revenue.
func (r *TicketRepo) RefundTicket(ctx context.Context, index uint64) (*model.Ticket, error) {
	return r.removeTicket(ctx, index, true)
}

func (r *TicketRepo) removeTicket(ctx context.Context, index uint64, refund bool) (t *model.Ticket, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	t = new(model.Ticket)
	err = scanTicket(tx.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE ticket_index = ? FOR UPDATE`, index), t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE ticket_index = ?`, index); err != nil {
		return nil, err
	}
	if !refund {
		return t, nil
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE seats SET status = ? WHERE house_number = ? AND row_index = ? AND column_index = ?`,
		model.SeatEmpty, t.HouseNumber, t.Row, t.Column); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE houses SET revenue_cents = GREATEST(revenue_cents, ?) - ? WHERE number = ?`,
		t.PriceCents, t.PriceCents, t.HouseNumber); err != nil {
		return nil, err
	}
	return t, nil
}

// TicketStats reports active tickets, tickets ever issued and total revenue.
func (r *TicketRepo) TicketStats(ctx context.Context) (model.TicketStats, error) {
	var st model.TicketStats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&st.Active); err != nil {
		return st, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = 'tickets'`).Scan(&st.Issued); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return st, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(revenue_cents), 0) FROM houses`).Scan(&st.RevenueCents); err != nil {
		return st, err
	}
	return st, nil
}
