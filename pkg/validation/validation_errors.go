package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FailedTags groups failing fields by validation tag, in the order the
// validator reported them. Fields are keyed by struct field name.
func FailedTags(err error) map[string][]string {
	out := map[string][]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return out
	}

	for _, e := range validationErrors {
		out[e.Tag()] = append(out[e.Tag()], e.Field())
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", e.Field())
	case "loose_email", "email":
		return fmt.Sprintf("%s: invalid email format", e.Field())
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s: failed validation (%s)", e.Field(), e.Tag())
	}
}
