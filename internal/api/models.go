package api

import (
	"time"

	"github.com/phrazzld/items-api/internal/domain"
)

// ItemRequest defines the payload for creating and updating an item.
// An id in the payload is accepted and ignored; the server assigns IDs and
// takes the ID of an update from the path.
//
// A nil Email means the field was absent. A present email, including "",
// must match domain.EmailPattern.
type ItemRequest struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Email       *string `json:"email,omitempty" validate:"omitempty,item_email"`
}

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (req ItemRequest) toDomain() *domain.Item {
	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.Email != nil {
		item.Email = *req.Email
	}
	return item
}

func itemToResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status,
		Email:       item.Email,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out
}
