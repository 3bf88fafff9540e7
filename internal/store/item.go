package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/items-api/internal/domain"
)

// ItemStore defines the interface for item persistence.
// Implementations must be safe for concurrent use across different IDs.
type ItemStore interface {
	// FindAll returns every stored item. Returns an empty slice when there are none.
	FindAll(ctx context.Context) ([]*domain.Item, error)

	// FindByID retrieves an item by its identifier.
	// Returns ErrItemNotFound if the item does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)

	// Save inserts the item when its ID is zero and assigns the new ID;
	// otherwise it updates the row with that ID and never recreates it.
	// Returns the persisted state, or ErrItemNotFound if the row is gone.
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)

	// DeleteByID removes an item.
	// Returns ErrItemNotFound if the item does not exist.
	DeleteByID(ctx context.Context, id int64) error

	// FindAllIDs lists the identifiers of all stored items without loading them.
	FindAllIDs(ctx context.Context) ([]int64, error)

	// WithTx returns a new ItemStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ItemStore
}
