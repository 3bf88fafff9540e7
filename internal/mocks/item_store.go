package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/store"
)

// MockItemStore is an in-memory store.ItemStore that is safe for concurrent
// use. Every method can be overridden through its Fn field; overrides may
// call the Default* methods to fall through to the in-memory behaviour.
type MockItemStore struct {
	FindAllFn    func(ctx context.Context) ([]*domain.Item, error)
	FindByIDFn   func(ctx context.Context, id int64) (*domain.Item, error)
	SaveFn       func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	DeleteByIDFn func(ctx context.Context, id int64) error
	FindAllIDsFn func(ctx context.Context) ([]int64, error)

	mu     sync.Mutex
	items  map[int64]domain.Item
	nextID int64

	calls struct {
		sync.Mutex
		findByID   int
		save       int
		deleteByID int
		withTx     int
	}
}

// NewMockItemStore creates an empty MockItemStore.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{items: make(map[int64]domain.Item)}
}

var _ store.ItemStore = (*MockItemStore)(nil)

// Seed stores copies of the given items and returns them with assigned IDs.
// Items with a non-zero ID are stored under that ID.
func (m *MockItemStore) Seed(items ...domain.Item) []domain.Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	seeded := make([]domain.Item, 0, len(items))
	for _, item := range items {
		now := time.Now().UTC()
		if item.ID == 0 {
			m.nextID++
			item.ID = m.nextID
		} else if item.ID > m.nextID {
			m.nextID = item.ID
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		m.items[item.ID] = item
		seeded = append(seeded, item)
	}
	return seeded
}

// Get returns a copy of the stored item and whether it exists.
func (m *MockItemStore) Get(id int64) (domain.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	return item, ok
}

// Remove deletes an item directly, bypassing hooks and counters.
func (m *MockItemStore) Remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
}

// Len returns the number of stored items.
func (m *MockItemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// FindAll implements store.ItemStore.FindAll
func (m *MockItemStore) FindAll(ctx context.Context) ([]*domain.Item, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return m.DefaultFindAll(ctx)
}

// DefaultFindAll returns copies of all stored items ordered by ID.
func (m *MockItemStore) DefaultFindAll(ctx context.Context) ([]*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]*domain.Item, 0, len(m.items))
	for _, item := range m.items {
		c := item
		items = append(items, &c)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// FindByID implements store.ItemStore.FindByID
func (m *MockItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	m.calls.Lock()
	m.calls.findByID++
	m.calls.Unlock()

	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return m.DefaultFindByID(ctx, id)
}

// DefaultFindByID returns a copy of the stored item or store.ErrItemNotFound.
func (m *MockItemStore) DefaultFindByID(ctx context.Context, id int64) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return &item, nil
}

// Save implements store.ItemStore.Save
func (m *MockItemStore) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	m.calls.Lock()
	m.calls.save++
	m.calls.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, item)
	}
	return m.DefaultSave(ctx, item)
}

// DefaultSave inserts an item without an ID or updates the stored item with
// that ID, returning a copy of the stored state. Updating a missing item
// returns store.ErrItemNotFound.
func (m *MockItemStore) DefaultSave(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *item
	now := time.Now().UTC()
	if saved.ID == 0 {
		m.nextID++
		saved.ID = m.nextID
		saved.CreatedAt = now
	} else {
		existing, ok := m.items[saved.ID]
		if !ok {
			return nil, store.ErrItemNotFound
		}
		saved.CreatedAt = existing.CreatedAt
	}
	saved.UpdatedAt = now

	m.items[saved.ID] = saved
	return &saved, nil
}

// DeleteByID implements store.ItemStore.DeleteByID
func (m *MockItemStore) DeleteByID(ctx context.Context, id int64) error {
	m.calls.Lock()
	m.calls.deleteByID++
	m.calls.Unlock()

	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return store.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

// FindAllIDs implements store.ItemStore.FindAllIDs
func (m *MockItemStore) FindAllIDs(ctx context.Context) ([]int64, error) {
	if m.FindAllIDsFn != nil {
		return m.FindAllIDsFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// WithTx implements store.ItemStore.WithTx. The mock has no transaction
// support, so the same instance is returned.
func (m *MockItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	m.calls.Lock()
	m.calls.withTx++
	m.calls.Unlock()
	return m
}

// FindByIDCalls returns how many times FindByID was called.
func (m *MockItemStore) FindByIDCalls() int {
	m.calls.Lock()
	defer m.calls.Unlock()
	return m.calls.findByID
}

// SaveCalls returns how many times Save was called.
func (m *MockItemStore) SaveCalls() int {
	m.calls.Lock()
	defer m.calls.Unlock()
	return m.calls.save
}

// DeleteByIDCalls returns how many times DeleteByID was called.
func (m *MockItemStore) DeleteByIDCalls() int {
	m.calls.Lock()
	defer m.calls.Unlock()
	return m.calls.deleteByID
}

// WithTxCalls returns how many times WithTx was called.
func (m *MockItemStore) WithTxCalls() int {
	m.calls.Lock()
	defer m.calls.Unlock()
	return m.calls.withTx
}
