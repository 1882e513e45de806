package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel comparisons

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// HouseRepo provides methods to create, read and mutate houses and their
// seats.  Each house owns one row in `houses` and Rows*Columns rows in
// `seats`.
type HouseRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewHouseRepo constructs a HouseRepo with the given DB handle.
func NewHouseRepo(db *sql.DB) *HouseRepo {
	return &HouseRepo{db: db}
}

const houseColumns = `number, n_row, n_column, movie, adult_price_cents, child_price_cents, revenue_cents, created_at, updated_at`

func scanHouse(row interface{ Scan(...interface{}) error }, h *model.House) error {
	return row.Scan(&h.Number, &h.Rows, &h.Columns, &h.Movie, &h.AdultPriceCents, &h.ChildPriceCents, &h.RevenueCents, &h.CreatedAt, &h.UpdatedAt)
}

// CreateHouse inserts a house and its empty seats in one transaction.  After
// insert the Number, timestamps and Plan of h are populated.
func (r *HouseRepo) CreateHouse(ctx context.Context, h *model.House) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	const qInsert = `INSERT INTO houses (n_row, n_column, movie, adult_price_cents, child_price_cents)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, h.Rows, h.Columns, h.Movie, h.AdultPriceCents, h.ChildPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.Number = uint64(id)

	// seats are created in bulk, one row per seat
	query := `INSERT INTO seats (house_number, row_index, column_index, status) VALUES `
	args := make([]interface{}, 0, h.Rows*h.Columns*4)
	for rIdx := 0; rIdx < h.Rows; rIdx++ {
		for cIdx := 0; cIdx < h.Columns; cIdx++ {
			if len(args) > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, h.Number, rIdx, cIdx, model.SeatEmpty)
		}
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	// read back defaults (timestamps, revenue)
	err = scanHouse(tx.QueryRowContext(ctx, `SELECT `+houseColumns+` FROM houses WHERE number = ?`, h.Number), h)
	if err != nil {
		return err
	}
	h.Plan = model.NewPlan(h.Rows, h.Columns)
	return nil
}

// GetHouse retrieves a house with its full seating plan.  It returns
// ErrHouseNotFound when no row is found.
func (r *HouseRepo) GetHouse(ctx context.Context, number uint64) (*model.House, error) {
	var h model.House
	err := scanHouse(r.db.QueryRowContext(ctx, `SELECT `+houseColumns+` FROM houses WHERE number = ?`, number), &h)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	h.Plan = model.NewPlan(h.Rows, h.Columns)
	if err := r.loadSeats(ctx, map[uint64]*model.House{h.Number: &h}, `WHERE house_number = ?`, number); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHouses returns every house ordered by number, plans included.
func (r *HouseRepo) ListHouses(ctx context.Context) ([]*model.House, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+houseColumns+` FROM houses ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.House
	byNumber := map[uint64]*model.House{}
	for rows.Next() {
		h := new(model.House)
		if err := scanHouse(rows, h); err != nil {
			return nil, err
		}
		h.Plan = model.NewPlan(h.Rows, h.Columns)
		out = append(out, h)
		byNumber[h.Number] = h
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := r.loadSeats(ctx, byNumber, ``); err != nil {
		return nil, err
	}
	return out, nil
}

// loadSeats fills the plans of the given houses from the seats table.
func (r *HouseRepo) loadSeats(ctx context.Context, houses map[uint64]*model.House, where string, args ...interface{}) error {
	rows, err := r.db.QueryContext(ctx, `SELECT house_number, row_index, column_index, status FROM seats `+where, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			number uint64
			rIdx   int
			cIdx   int
			status string
		)
		if err := rows.Scan(&number, &rIdx, &cIdx, &status); err != nil {
			return err
		}
		h, ok := houses[number]
		if !ok || rIdx >= h.Rows || cIdx >= h.Columns {
			continue
		}
		h.Plan[rIdx][cIdx] = model.SeatStatus(status)
	}
	return rows.Err()
}

// UpdateHouse updates the movie and prices of a house.  With reset it also
// empties every seat and deletes the house's tickets, all in one
// transaction, and returns the number of tickets removed.  Returns
// ErrHouseNotFound when the house does not exist.
func (r *HouseRepo) UpdateHouse(ctx context.Context, h *model.House, reset bool) (removed int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if err = lockHouse(ctx, tx, h.Number); err != nil {
		return 0, err
	}
	if reset {
		if removed, err = deleteTicketsOfHouse(ctx, tx, h.Number); err != nil {
			return 0, err
		}
		if _, err = tx.ExecContext(ctx, `UPDATE seats SET status = ? WHERE house_number = ?`, model.SeatEmpty, h.Number); err != nil {
			return 0, err
		}
	}
	const q = `UPDATE houses
	           SET movie = ?, adult_price_cents = ?, child_price_cents = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE number = ?`
	if _, err = tx.ExecContext(ctx, q, h.Movie, h.AdultPriceCents, h.ChildPriceCents, h.Number); err != nil {
		return 0, err
	}
	return removed, nil
}

// ResetHouse empties every seat of the house and deletes its tickets.  It
// returns the number of tickets removed.
func (r *HouseRepo) ResetHouse(ctx context.Context, number uint64) (removed int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if err = lockHouse(ctx, tx, number); err != nil {
		return 0, err
	}
	if removed, err = deleteTicketsOfHouse(ctx, tx, number); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE seats SET status = ? WHERE house_number = ?`, model.SeatEmpty, number); err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteHouse removes a house, its seats and its tickets.  It returns the
// number of tickets removed.
func (r *HouseRepo) DeleteHouse(ctx context.Context, number uint64) (removed int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if err = lockHouse(ctx, tx, number); err != nil {
		return 0, err
	}
	if removed, err = deleteTicketsOfHouse(ctx, tx, number); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM seats WHERE house_number = ?`, number); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM houses WHERE number = ?`, number); err != nil {
		return 0, err
	}
	return removed, nil
}

// SetSeatStatus overwrites the status of the given seats.  Tickets are not
// touched.  Either every seat is updated or none is.
func (r *HouseRepo) SetSeatStatus(ctx context.Context, number uint64, seats []coorexpr.Coordinate, status model.SeatStatus) (err error) {
	if !status.Valid() {
		return ErrInvalidSeatStatus
	}
	seats = dedupe(seats)
	if len(seats) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if err = lockHouse(ctx, tx, number); err != nil {
		return err
	}
	clause, args := seatTupleClause(seats)
	if _, err = tx.ExecContext(ctx,
		`UPDATE seats SET status = ? WHERE house_number = ? AND `+clause,
		append([]interface{}{status, number}, args...)...); err != nil {
		return err
	}
	// unchanged rows are not counted as affected, so verify existence instead
	var n int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seats WHERE house_number = ? AND `+clause,
		append([]interface{}{number}, args...)...).Scan(&n); err != nil {
		return err
	}
	if n != len(seats) {
		return ErrSeatOutOfPlan
	}
	return nil
}

// lockHouse takes a row lock on the house inside tx, or reports
// ErrHouseNotFound.
func lockHouse(ctx context.Context, tx *sql.Tx, number uint64) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM houses WHERE number = ? FOR UPDATE`, number).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrHouseNotFound
	}
	return err
}

// deleteTicketsOfHouse removes all tickets of a house inside tx.
func deleteTicketsOfHouse(ctx context.Context, tx *sql.Tx, number uint64) (int, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM tickets WHERE house_number = ?`, number)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
