// Package mocks provides centralized mock implementations for testing.
//
// Mocks follow two styles. Function-field mocks (MockItemStore,
// MockItemService, MockBatchProcessor) run a default behaviour unless the
// test sets the matching Fn field, and track calls for verification.
// TestifyMockItemStore is built on testify/mock for tests that assert exact
// call expectations.
//
//	itemStore := mocks.NewMockItemStore()
//	itemStore.FindByIDFn = func(ctx context.Context, id int64) (*domain.Item, error) {
//		return nil, errors.New("connection reset")
//	}
package mocks
