package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/items-api/internal/api/shared"
	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/service"
)

// BatchProcessor marks every stored item as processed and returns the
// items it saved.
type BatchProcessor interface {
	ProcessAll(ctx context.Context) ([]domain.Item, error)
}

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService service.ItemService
	processor   BatchProcessor
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService, processor BatchProcessor, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ItemHandler{
		itemService: itemService,
		processor:   processor,
		logger:      logger.With("component", "item_handler"),
	}
}

// ListItems handles GET /api/items requests
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list items")
		return
	}

	response := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemToResponse(*item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateItem handles POST /api/items requests
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ItemRequest
	if err := parseAndValidateRequest(r, &req); err != nil {
		log.Debug("invalid create item request", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(*item))
}

// GetItem handles GET /api/items/{id} requests
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(*item))
}

// UpdateItem handles PUT /api/items/{id} requests
// The ID in the path wins over any ID in the body. A missing item answers
// 404 even when the payload is invalid.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ItemRequest
	if err := parseAndValidateRequest(r, &req); err != nil {
		log.Debug("invalid update item request",
			slog.Int64("item_id", id),
			slog.String("error", err.Error()))
		if _, getErr := h.itemService.GetItem(r.Context(), id); getErr != nil {
			HandleAPIError(w, r, getErr, "Failed to update item")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), id, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(*item))
}

// DeleteItem handles DELETE /api/items/{id} requests
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.itemService.DeleteItem(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete item")
		return
	}

	shared.RespondWithStatus(w, r, http.StatusNoContent)
}

// ProcessItems handles GET /api/items/process requests.
// It blocks until every item has been handled.
func (h *ItemHandler) ProcessItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.processor.ProcessAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to process items")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// RegisterRoutes mounts the item endpoints on r under /items.
// The static /items/process route is matched before /items/{id}.
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Post("/", h.CreateItem)
		r.Get("/process", h.ProcessItems)
		r.Get("/{id}", h.GetItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
	})
}
