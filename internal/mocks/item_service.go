package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/items-api/internal/domain"
)

// MockItemService implements service.ItemService for testing.
// Unset Fn fields return the zero value and Err.
type MockItemService struct {
	ListItemsFn  func(ctx context.Context) ([]*domain.Item, error)
	CreateItemFn func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetItemFn    func(ctx context.Context, id int64) (*domain.Item, error)
	UpdateItemFn func(ctx context.Context, id int64, item *domain.Item) (*domain.Item, error)
	DeleteItemFn func(ctx context.Context, id int64) error

	// Err is returned by methods without an Fn override
	Err error

	mu    sync.Mutex
	calls []string
}

func (m *MockItemService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

// Calls returns the names of the methods called so far, in order.
func (m *MockItemService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// ListItems implements service.ItemService.ListItems
func (m *MockItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	m.record("ListItems")
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx)
	}
	return nil, m.Err
}

// CreateItem implements service.ItemService.CreateItem
func (m *MockItemService) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	m.record("CreateItem")
	if m.CreateItemFn != nil {
		return m.CreateItemFn(ctx, item)
	}
	return nil, m.Err
}

// GetItem implements service.ItemService.GetItem
func (m *MockItemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	m.record("GetItem")
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, id)
	}
	return nil, m.Err
}

// UpdateItem implements service.ItemService.UpdateItem
func (m *MockItemService) UpdateItem(ctx context.Context, id int64, item *domain.Item) (*domain.Item, error) {
	m.record("UpdateItem")
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, id, item)
	}
	return nil, m.Err
}

// DeleteItem implements service.ItemService.DeleteItem
func (m *MockItemService) DeleteItem(ctx context.Context, id int64) error {
	m.record("DeleteItem")
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, id)
	}
	return m.Err
}
