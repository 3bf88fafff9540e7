package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/store"
)

const itemColumns = `id, name, description, status, email, created_at, updated_at`

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the ItemStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// DB returns the underlying database connection or transaction.
func (s *PostgresItemStore) DB() store.DBTX {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Status,
		&item.Email,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll implements store.ItemStore.FindAll
func (s *PostgresItemStore) FindAll(ctx context.Context) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		log.Error("failed to query items", slog.String("error", err.Error()))
		return nil, store.NewStoreError("item", "find_all", "failed to query items", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, store.NewStoreError("item", "find_all", "failed to scan item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("item", "find_all", "failed to iterate items", MapError(err))
	}

	log.Debug("retrieved items", slog.Int("count", len(items)))
	return items, nil
}

// FindByID implements store.ItemStore.FindByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, store.NewStoreError("item", "find_by_id", "failed to get item", MapError(err))
	}

	return item, nil
}

// Save implements store.ItemStore.Save
// An item without an ID is inserted and receives a new identity. An item with
// an ID updates that row and returns store.ErrItemNotFound if it is gone.
func (s *PostgresItemStore) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	var row *sql.Row
	if item.ID == 0 {
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO items (name, description, status, email, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+itemColumns,
			item.Name, item.Description, item.Status, item.Email, createdAt, now)
	} else {
		row = s.db.QueryRowContext(ctx, `
			UPDATE items
			SET name = $2, description = $3, status = $4, email = $5, updated_at = $6
			WHERE id = $1
			RETURNING `+itemColumns,
			item.ID, item.Name, item.Description, item.Status, item.Email, now)
	}

	saved, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item to update not found", slog.Int64("item_id", item.ID))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to save item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return nil, store.NewStoreError("item", "save", "failed to save item", MapError(err))
	}

	log.Debug("item saved", slog.Int64("item_id", saved.ID), slog.String("status", saved.Status))
	return saved, nil
}

// DeleteByID implements store.ItemStore.DeleteByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return store.NewStoreError("item", "delete", "failed to delete item", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrItemNotFound); err != nil {
		return err
	}

	log.Debug("item deleted", slog.Int64("item_id", id))
	return nil
}

// FindAllIDs implements store.ItemStore.FindAllIDs
func (s *PostgresItemStore) FindAllIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM items ORDER BY id`)
	if err != nil {
		log.Error("failed to query item IDs", slog.String("error", err.Error()))
		return nil, store.NewStoreError("item", "find_all_ids", "failed to query item IDs", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("item", "find_all_ids", "failed to scan item ID", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("item", "find_all_ids", "failed to iterate item IDs", MapError(err))
	}

	return ids, nil
}

// WithTx implements store.ItemStore.WithTx
// It returns a new ItemStore instance that uses the provided transaction.
func (s *PostgresItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &PostgresItemStore{
		db:     tx,
		logger: s.logger,
	}
}
