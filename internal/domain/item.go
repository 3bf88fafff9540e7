package domain

import (
	"regexp"
	"time"
)

// StatusProcessed is the status written by the batch processor.
const StatusProcessed = "PROCESSED"

// EmailPattern is the accepted shape of an item's email address.
const EmailPattern = `^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`

var emailRegex = regexp.MustCompile(EmailPattern)

// Item is the single resource managed by the API.
//
// ID is zero until the store assigns one. Once assigned it never changes.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem builds an unsaved item and validates it.
func NewItem(name, description, status, email string) (*Item, error) {
	item := &Item{
		Name:        name,
		Description: description,
		Status:      status,
		Email:       email,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the item's user-supplied fields.
// An empty email is treated as absent and accepted.
func (i *Item) Validate() error {
	if i.ID < 0 {
		return NewValidationError("id", "must not be negative", ErrInvalidID)
	}

	if i.Email != "" && !IsValidEmail(i.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	return nil
}

// MarkProcessed overwrites the status with StatusProcessed.
// No validation runs: the item is already stored and valid.
func (i *Item) MarkProcessed() {
	i.Status = StatusProcessed
	i.UpdatedAt = time.Now().UTC()
}

// IsValidEmail reports whether email matches EmailPattern.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
