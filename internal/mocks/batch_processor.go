package mocks

import (
	"context"
	"sync/atomic"

	"github.com/phrazzld/items-api/internal/domain"
)

// MockBatchProcessor implements api.BatchProcessor for testing.
type MockBatchProcessor struct {
	ProcessAllFn func(ctx context.Context) ([]domain.Item, error)

	// Items and Err are returned when ProcessAllFn is nil
	Items []domain.Item
	Err   error

	calls atomic.Int64
}

// ProcessAll implements api.BatchProcessor.ProcessAll
func (m *MockBatchProcessor) ProcessAll(ctx context.Context) ([]domain.Item, error) {
	m.calls.Add(1)
	if m.ProcessAllFn != nil {
		return m.ProcessAllFn(ctx)
	}
	return m.Items, m.Err
}

// ProcessAllCalls returns how many times ProcessAll was called.
func (m *MockBatchProcessor) ProcessAllCalls() int {
	return int(m.calls.Load())
}
