package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
	"github.com/iliyamo/cinema-box-office/internal/model"
)

// MemoryStore keeps houses, tickets, users and refresh tokens in process
// memory.  It is selected with STORE_DRIVER=memory and backs the tests.
// Values handed out are copies; callers never share state with the store.
type MemoryStore struct {
	mu sync.Mutex

	houses     map[uint64]*model.House
	nextHouse  uint64
	tickets    map[uint64]*model.Ticket
	nextTicket uint64

	users    map[uint64]model.User
	nextUser uint64
	tokens   map[string]memToken

	now func() time.Time
}

type memToken struct {
	userID    uint64
	expiresAt time.Time
	revoked   bool
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		houses:  map[uint64]*model.House{},
		tickets: map[uint64]*model.Ticket{},
		users:   map[uint64]model.User{},
		tokens:  map[string]memToken{},
		now:     time.Now,
	}
}

func copyHouse(h *model.House) *model.House {
	c := *h
	c.Plan = make([][]model.SeatStatus, len(h.Plan))
	for r := range h.Plan {
		c.Plan[r] = append([]model.SeatStatus(nil), h.Plan[r]...)
	}
	return &c
}

func copyTicket(t *model.Ticket) *model.Ticket {
	c := *t
	return &c
}

func (m *MemoryStore) CreateHouse(_ context.Context, h *model.House) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextHouse++
	now := m.now().UTC()
	h.Number = m.nextHouse
	h.RevenueCents = 0
	h.CreatedAt, h.UpdatedAt = now, now
	h.Plan = model.NewPlan(h.Rows, h.Columns)
	m.houses[h.Number] = copyHouse(h)
	return nil
}

func (m *MemoryStore) GetHouse(_ context.Context, number uint64) (*model.House, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.houses[number]
	if !ok {
		return nil, ErrHouseNotFound
	}
	return copyHouse(h), nil
}

func (m *MemoryStore) ListHouses(_ context.Context) ([]*model.House, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.House, 0, len(m.houses))
	for _, h := range m.houses {
		out = append(out, copyHouse(h))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// UpdateHouse stores movie and prices.  With reset the plan is emptied and
// the house's tickets are dropped in the same locked section.
func (m *MemoryStore) UpdateHouse(_ context.Context, h *model.House, reset bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.houses[h.Number]
	if !ok {
		return 0, ErrHouseNotFound
	}
	removed := 0
	if reset {
		cur.Plan = model.NewPlan(cur.Rows, cur.Columns)
		removed = m.dropTickets(h.Number)
	}
	cur.Movie = h.Movie
	cur.AdultPriceCents = h.AdultPriceCents
	cur.ChildPriceCents = h.ChildPriceCents
	cur.UpdatedAt = m.now().UTC()
	return removed, nil
}

// dropTickets removes the tickets of a house; callers hold mu.
func (m *MemoryStore) dropTickets(number uint64) int {
	n := 0
	for idx, t := range m.tickets {
		if t.HouseNumber == number {
			delete(m.tickets, idx)
			n++
		}
	}
	return n
}

func (m *MemoryStore) ResetHouse(_ context.Context, number uint64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.houses[number]
	if !ok {
		return 0, ErrHouseNotFound
	}
	h.Plan = model.NewPlan(h.Rows, h.Columns)
	return m.dropTickets(number), nil
}

func (m *MemoryStore) DeleteHouse(_ context.Context, number uint64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.houses[number]; !ok {
		return 0, ErrHouseNotFound
	}
	delete(m.houses, number)
	return m.dropTickets(number), nil
}

func inPlan(h *model.House, c coorexpr.Coordinate) bool {
	return c.Row >= 0 && c.Row < h.Rows && c.Column >= 0 && c.Column < h.Columns
}

func (m *MemoryStore) SetSeatStatus(_ context.Context, number uint64, seats []coorexpr.Coordinate, status model.SeatStatus) error {
	if !status.Valid() {
		return ErrInvalidSeatStatus
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.houses[number]
	if !ok {
		return ErrHouseNotFound
	}
	for _, s := range seats {
		if !inPlan(h, s) {
			return ErrSeatOutOfPlan
		}
	}
	for _, s := range seats {
		h.Plan[s.Row][s.Column] = status
	}
	return nil
}

func (m *MemoryStore) SellSeats(_ context.Context, number uint64, seats []coorexpr.Coordinate, kind model.TicketKind, at time.Time) ([]*model.Ticket, error) {
	seats = dedupe(seats)
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.houses[number]
	if !ok {
		return nil, ErrHouseNotFound
	}
	for _, s := range seats {
		if !inPlan(h, s) {
			return nil, ErrSeatOutOfPlan
		}
		if h.Plan[s.Row][s.Column] != model.SeatEmpty {
			return nil, ErrSeatUnavailable
		}
	}
	price := h.Price(kind)
	out := make([]*model.Ticket, 0, len(seats))
	for _, s := range seats {
		h.Plan[s.Row][s.Column] = model.SeatSold
		m.nextTicket++
		t := &model.Ticket{
			Index:       m.nextTicket,
			IssuedAt:    at.UTC(),
			HouseNumber: number,
			Movie:       h.Movie,
			Row:         s.Row,
			Column:      s.Column,
			Kind:        kind,
			PriceCents:  price,
		}
		m.tickets[t.Index] = t
		h.RevenueCents += uint64(price)
		out = append(out, copyTicket(t))
	}
	return out, nil
}

func (m *MemoryStore) GetTicket(_ context.Context, index uint64) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[index]
	if !ok {
		return nil, ErrTicketNotFound
	}
	return copyTicket(t), nil
}

func (m *MemoryStore) ListTickets(_ context.Context) ([]*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		out = append(out, copyTicket(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (m *MemoryStore) DeleteTicket(_ context.Context, index uint64) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[index]
	if !ok {
		return nil, ErrTicketNotFound
	}
	delete(m.tickets, index)
	return t, nil
}

func (m *MemoryStore) RefundTicket(_ context.Context, index uint64) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[index]
	if !ok {
		return nil, ErrTicketNotFound
	}
	delete(m.tickets, index)
	if h, ok := m.houses[t.HouseNumber]; ok {
		if inPlan(h, t.Coordinate()) {
			h.Plan[t.Row][t.Column] = model.SeatEmpty
		}
		if h.RevenueCents >= uint64(t.PriceCents) {
			h.RevenueCents -= uint64(t.PriceCents)
		} else {
			h.RevenueCents = 0
		}
	}
	return t, nil
}

func (m *MemoryStore) TicketStats(_ context.Context) (model.TicketStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := model.TicketStats{Active: len(m.tickets), Issued: m.nextTicket}
	for _, h := range m.houses {
		st.RevenueCents += h.RevenueCents
	}
	return st, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, email, passwordHash, role string) (uint64, error) {
	email = NormalizeEmail(email)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return 0, ErrEmailExists
		}
	}
	m.nextUser++
	now := m.now().UTC()
	m.users[m.nextUser] = model.User{
		ID:           m.nextUser,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return m.nextUser, nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	email = NormalizeEmail(email)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (m *MemoryStore) GetUserByID(_ context.Context, id uint64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

func (m *MemoryStore) StoreRefresh(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[tokenHash] = memToken{userID: userID, expiresAt: exp.UTC()}
	return nil
}

func (m *MemoryStore) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[tokenHash]
	if !ok || t.revoked || m.now().UTC().After(t.expiresAt) {
		return 0, ErrInvalidRefresh
	}
	return t.userID, nil
}

func (m *MemoryStore) RevokeByHash(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tokens[tokenHash]; ok {
		t.revoked = true
		m.tokens[tokenHash] = t
	}
	return nil
}

func (m *MemoryStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for h, t := range m.tokens {
		if t.userID == userID {
			t.revoked = true
			m.tokens[h] = t
		}
	}
	return nil
}
