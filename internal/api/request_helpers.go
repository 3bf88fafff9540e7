package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/items-api/internal/api/shared"
	"github.com/phrazzld/items-api/internal/domain"
)

// getPathID extracts a positive item ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// parseAndValidateRequest decodes the JSON body into req and validates it.
func parseAndValidateRequest(r *http.Request, req interface{}) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return domain.NewValidationError("body", "is not valid JSON", domain.ErrValidation)
	}
	return shared.ValidateRequest(req)
}
