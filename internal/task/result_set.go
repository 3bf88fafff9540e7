package task

import (
	"sync"
	"sync/atomic"

	"github.com/phrazzld/items-api/internal/domain"
)

// resultSet collects the items saved during one ProcessAll call.
// It is safe for concurrent use by the units of that call.
type resultSet struct {
	mu    sync.Mutex
	items []domain.Item

	processed atomic.Int64
	skipped   atomic.Int64
	failed    atomic.Int64
}

func newResultSet(capacity int) *resultSet {
	return &resultSet{items: make([]domain.Item, 0, capacity)}
}

func (r *resultSet) add(item domain.Item) {
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
	r.processed.Add(1)
}

// snapshot returns a copy of the collected items.
func (r *resultSet) snapshot() []domain.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out
}
