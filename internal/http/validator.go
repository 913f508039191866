package http

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes one rejected field of a request payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct checks s against its validate tags and returns one entry
// per violation, or nil when the payload is acceptable.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var out []ValidationError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}

func writeValidationError(w http.ResponseWriter, details []ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "validation failed",
		"details": details,
	})
}
