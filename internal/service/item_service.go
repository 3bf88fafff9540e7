package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/store"
)

// ItemService provides the CRUD operations on items.
type ItemService interface {
	// ListItems returns every stored item.
	ListItems(ctx context.Context) ([]*domain.Item, error)

	// CreateItem validates and stores a new item. Any ID on the input is ignored.
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)

	// GetItem retrieves an item by ID. Returns ErrItemNotFound if it does not exist.
	GetItem(ctx context.Context, id int64) (*domain.Item, error)

	// UpdateItem replaces the item stored under id with the given fields.
	// Returns ErrItemNotFound if no such item exists; never creates one.
	UpdateItem(ctx context.Context, id int64, item *domain.Item) (*domain.Item, error)

	// DeleteItem removes an item. Returns ErrItemNotFound if it does not exist.
	DeleteItem(ctx context.Context, id int64) error
}

// itemServiceImpl implements the ItemService interface
type itemServiceImpl struct {
	itemStore store.ItemStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewItemService creates a new ItemService.
// db is used to open transactions for update and delete; it may be nil, in
// which case those operations run directly against itemStore.
func NewItemService(itemStore store.ItemStore, db *sql.DB, logger *slog.Logger) (ItemService, error) {
	if itemStore == nil {
		return nil, &ItemServiceError{
			Operation: "create_service",
			Message:   "itemStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &itemServiceImpl{
		itemStore: itemStore,
		db:        db,
		logger:    logger.With("component", "item_service"),
	}, nil
}

// inTx runs fn against a transactional store when a database is configured.
func (s *itemServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context, itemStore store.ItemStore) error) error {
	if s.db == nil {
		return fn(ctx, s.itemStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.itemStore.WithTx(tx))
	})
}

// ListItems implements ItemService.ListItems
func (s *itemServiceImpl) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemStore.FindAll(ctx)
	if err != nil {
		return nil, NewItemServiceError("list_items", "failed to retrieve items", err)
	}
	return items, nil
}

// CreateItem implements ItemService.CreateItem
func (s *itemServiceImpl) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item.ID = 0
	if err := item.Validate(); err != nil {
		log.Debug("item validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	saved, err := s.itemStore.Save(ctx, item)
	if err != nil {
		return nil, NewItemServiceError("create_item", "failed to save item", err)
	}

	log.Info("item created", slog.Int64("item_id", saved.ID))
	return saved, nil
}

// GetItem implements ItemService.GetItem
func (s *itemServiceImpl) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.itemStore.FindByID(ctx, id)
	if err != nil {
		return nil, NewItemServiceError("get_item", "failed to retrieve item", err)
	}
	return item, nil
}

// UpdateItem implements ItemService.UpdateItem
// The existence check and the save share one transaction. A missing item is
// reported before any validation error.
func (s *itemServiceImpl) UpdateItem(ctx context.Context, id int64, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item.ID = id

	var saved *domain.Item
	err := s.inTx(ctx, func(ctx context.Context, itemStore store.ItemStore) error {
		existing, err := itemStore.FindByID(ctx, id)
		if err != nil {
			return NewItemServiceError("update_item", "failed to retrieve item", err)
		}

		if err := item.Validate(); err != nil {
			log.Debug("item validation failed",
				slog.Int64("item_id", id),
				slog.String("error", err.Error()))
			return err
		}

		item.CreatedAt = existing.CreatedAt
		saved, err = itemStore.Save(ctx, item)
		if err != nil {
			return NewItemServiceError("update_item", "failed to save item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("item updated", slog.Int64("item_id", id))
	return saved, nil
}

// DeleteItem implements ItemService.DeleteItem
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.inTx(ctx, func(ctx context.Context, itemStore store.ItemStore) error {
		if err := itemStore.DeleteByID(ctx, id); err != nil {
			return NewItemServiceError("delete_item", "failed to delete item", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("item deleted", slog.Int64("item_id", id))
	return nil
}
