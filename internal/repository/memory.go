package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"grotto/internal/domain"
)

// MemoryStore объединённое in-memory хранилище всех сущностей.
// Используется в тестах и при запуске без MONGODB_URI.
type MemoryStore struct {
	mu             sync.RWMutex
	cafeItemsByID  map[string]domain.CafeItem
	barGamesByID   map[string]domain.BarGame
	sessionsByID   map[string]domain.GameSession
	customersByID  map[string]domain.Customer
	membershipByID map[string]domain.Membership
	ordersByID     map[string]domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cafeItemsByID:  make(map[string]domain.CafeItem),
		barGamesByID:   make(map[string]domain.BarGame),
		sessionsByID:   make(map[string]domain.GameSession),
		customersByID:  make(map[string]domain.Customer),
		membershipByID: make(map[string]domain.Membership),
		ordersByID:     make(map[string]domain.Order),
	}
}

// NewMemorySet собирает полный набор репозиториев поверх одного MemoryStore
func NewMemorySet() *Set {
	store := NewMemoryStore()
	return &Set{
		CafeItems:    &MemoryCafeItems{store: store},
		BarGames:     &MemoryBarGames{store: store},
		GameSessions: &MemoryGameSessions{store: store},
		Customers:    &MemoryCustomers{store: store},
		Memberships:  &MemoryMemberships{store: store},
		Orders:       &MemoryOrders{store: store},
		Tx:           &MemoryTx{store: store},
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// MemoryCafeItems реализация CafeItemRepository
type MemoryCafeItems struct{ store *MemoryStore }

func NewMemoryCafeItems(store *MemoryStore) *MemoryCafeItems { return &MemoryCafeItems{store: store} }

var _ CafeItemRepository = (*MemoryCafeItems)(nil)

func (r *MemoryCafeItems) Create(ctx context.Context, it *domain.CafeItem) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	it.ID = uuid.NewString()
	it.CreatedAt = time.Now().UTC()
	it.UpdatedAt = it.CreatedAt
	r.store.cafeItemsByID[it.ID] = *it
	return nil
}

func (r *MemoryCafeItems) GetByID(ctx context.Context, id string) (*domain.CafeItem, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	it, ok := r.store.cafeItemsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := it
	return &cp, nil
}

func (r *MemoryCafeItems) Update(ctx context.Context, it *domain.CafeItem) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.cafeItemsByID[it.ID]
	if !ok {
		return ErrNotFound
	}
	it.CreatedAt = cur.CreatedAt
	it.UpdatedAt = time.Now().UTC()
	r.store.cafeItemsByID[it.ID] = *it
	return nil
}

func (r *MemoryCafeItems) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.cafeItemsByID[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.cafeItemsByID, id)
	return nil
}

func (r *MemoryCafeItems) List(ctx context.Context, f CafeItemFilter) ([]domain.CafeItem, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.CafeItem, 0)
	for _, it := range r.store.cafeItemsByID {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.LowStock && !isLowStock(&it) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// MemoryBarGames реализация BarGameRepository
type MemoryBarGames struct{ store *MemoryStore }

var _ BarGameRepository = (*MemoryBarGames)(nil)

func (r *MemoryBarGames) Create(ctx context.Context, g *domain.BarGame) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	g.UpdatedAt = g.CreatedAt
	r.store.barGamesByID[g.ID] = *g
	return nil
}

func (r *MemoryBarGames) GetByID(ctx context.Context, id string) (*domain.BarGame, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	g, ok := r.store.barGamesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := g
	return &cp, nil
}

func (r *MemoryBarGames) Update(ctx context.Context, g *domain.BarGame) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.barGamesByID[g.ID]
	if !ok {
		return ErrNotFound
	}
	g.CreatedAt = cur.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	r.store.barGamesByID[g.ID] = *g
	return nil
}

func (r *MemoryBarGames) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.barGamesByID[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.barGamesByID, id)
	return nil
}

func (r *MemoryBarGames) List(ctx context.Context) ([]domain.BarGame, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.BarGame, 0, len(r.store.barGamesByID))
	for _, g := range r.store.barGamesByID {
		out = append(out, g)
	}
	return out, nil
}

// MemoryGameSessions реализация GameSessionRepository
type MemoryGameSessions struct{ store *MemoryStore }

var _ GameSessionRepository = (*MemoryGameSessions)(nil)

func (r *MemoryGameSessions) Create(ctx context.Context, s *domain.GameSession) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	r.store.sessionsByID[s.ID] = *s
	return nil
}

func (r *MemoryGameSessions) GetByID(ctx context.Context, id string) (*domain.GameSession, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	s, ok := r.store.sessionsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (r *MemoryGameSessions) Update(ctx context.Context, s *domain.GameSession) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.sessionsByID[s.ID]
	if !ok {
		return ErrNotFound
	}
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	r.store.sessionsByID[s.ID] = *s
	return nil
}

func (r *MemoryGameSessions) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.sessionsByID[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.sessionsByID, id)
	return nil
}

func (r *MemoryGameSessions) List(ctx context.Context, f SessionFilter) ([]domain.GameSession, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.GameSession, 0)
	for _, s := range r.store.sessionsByID {
		if f.CustomerID != "" && s.CustomerID != f.CustomerID {
			continue
		}
		if f.Active != nil && s.Active() != *f.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *MemoryGameSessions) FindActiveByCustomer(ctx context.Context, customerID string) (*domain.GameSession, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	for _, s := range r.store.sessionsByID {
		if s.CustomerID == customerID && s.Active() {
			cp := s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryCustomers реализация CustomerRepository
type MemoryCustomers struct{ store *MemoryStore }

var _ CustomerRepository = (*MemoryCustomers)(nil)

func (r *MemoryCustomers) Create(ctx context.Context, c *domain.Customer) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	r.store.customersByID[c.ID] = *c
	return nil
}

func (r *MemoryCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	c, ok := r.store.customersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (r *MemoryCustomers) Update(ctx context.Context, c *domain.Customer) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.customersByID[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	r.store.customersByID[c.ID] = *c
	return nil
}

func (r *MemoryCustomers) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.customersByID[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.customersByID, id)
	return nil
}

func (r *MemoryCustomers) List(ctx context.Context, f CustomerFilter) ([]domain.Customer, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.Customer, 0)
	for _, c := range r.store.customersByID {
		if f.Query != "" &&
			!containsIgnoreCase(c.Name, f.Query) &&
			!containsIgnoreCase(c.Email, f.Query) &&
			!containsIgnoreCase(c.Phone, f.Query) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// MemoryMemberships реализация MembershipRepository
type MemoryMemberships struct{ store *MemoryStore }

var _ MembershipRepository = (*MemoryMemberships)(nil)

func (r *MemoryMemberships) Create(ctx context.Context, m *domain.Membership) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	r.store.membershipByID[m.ID] = *m
	return nil
}

func (r *MemoryMemberships) GetByID(ctx context.Context, id string) (*domain.Membership, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	m, ok := r.store.membershipByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := m
	return &cp, nil
}

func (r *MemoryMemberships) Update(ctx context.Context, m *domain.Membership) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.membershipByID[m.ID]
	if !ok {
		return ErrNotFound
	}
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	r.store.membershipByID[m.ID] = *m
	return nil
}

func (r *MemoryMemberships) Delete(ctx context.Context, id string) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	if _, ok := r.store.membershipByID[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.membershipByID, id)
	return nil
}

func (r *MemoryMemberships) List(ctx context.Context) ([]domain.Membership, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.Membership, 0, len(r.store.membershipByID))
	for _, m := range r.store.membershipByID {
		out = append(out, m)
	}
	return out, nil
}

// MemoryOrders реализация OrderRepository
type MemoryOrders struct{ store *MemoryStore }

var _ OrderRepository = (*MemoryOrders)(nil)

func (r *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	r.store.ordersByID[o.ID] = *o
	return nil
}

func (r *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	o, ok := r.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *MemoryOrders) Update(ctx context.Context, o *domain.Order) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	cur, ok := r.store.ordersByID[o.ID]
	if !ok {
		return ErrNotFound
	}
	o.CreatedAt = cur.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	r.store.ordersByID[o.ID] = cp
	return nil
}

func (r *MemoryOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	out := make([]domain.Order, 0)
	for _, o := range r.store.ordersByID {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		cp := o
		cp.Items = append([]domain.OrderItem(nil), o.Items...)
		out = append(out, cp)
	}
	return out, nil
}

// MemoryTx эмуляция транзакции блокировкой записи; контекст помечается,
// чтобы репозитории пропускали внутренние локи
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
