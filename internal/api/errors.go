package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/items-api/internal/api/shared"
	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/service"
	"github.com/phrazzld/items-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// Not found errors
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Item not found"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email format"

	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid item data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Client errors (4xx) are
// answered with the status code alone; server errors get the JSON error body
// with fallbackMsg (or a safe message) and are logged with redaction.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)

	if status < http.StatusInternalServerError {
		shared.RespondWithStatus(w, r, status)
		return
	}

	msg := fallbackMsg
	if msg == "" {
		msg = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
