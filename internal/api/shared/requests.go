package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/items-api/internal/domain"
)

// ItemEmailTag validates an item email against domain.EmailPattern.
const ItemEmailTag = "item_email"

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag or nil func.
	_ = v.RegisterValidation(ItemEmailTag, func(fl validator.FieldLevel) bool {
		return domain.IsValidEmail(fl.Field().String())
	})
	return v
}

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	return validate
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
