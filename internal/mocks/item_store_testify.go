package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockItemStore is a mock of store.ItemStore interface for use with testify/mock
type TestifyMockItemStore struct {
	mock.Mock
}

var _ store.ItemStore = (*TestifyMockItemStore)(nil)

// FindAll is a mock implementation of store.ItemStore.FindAll
func (m *TestifyMockItemStore) FindAll(ctx context.Context) ([]*domain.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*domain.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID is a mock implementation of store.ItemStore.FindByID
func (m *TestifyMockItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*domain.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.ItemStore.Save
func (m *TestifyMockItemStore) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if saved, ok := args.Get(0).(*domain.Item); ok {
		return saved, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteByID is a mock implementation of store.ItemStore.DeleteByID
func (m *TestifyMockItemStore) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FindAllIDs is a mock implementation of store.ItemStore.FindAllIDs
func (m *TestifyMockItemStore) FindAllIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx is a mock implementation of store.ItemStore.WithTx
func (m *TestifyMockItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	args := m.Called(tx)
	if ret, ok := args.Get(0).(store.ItemStore); ok {
		return ret
	}
	return m
}
