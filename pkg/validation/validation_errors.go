package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins FormatValidationErrors into a single line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: is required", field)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s: must be at most %s", field, param)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", field, formatOneOfOptions(param))
	case "email":
		return fmt.Sprintf("%s: invalid email format", field)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", field)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", field, e.Tag())
	}
}

// formatOneOfOptions formats oneof options for display. Multi-word
// options are written with single quotes in the tag.
func formatOneOfOptions(param string) string {
	return strings.Join(splitOneOf(param), ", ")
}

func splitOneOf(param string) []string {
	var (
		out     []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range param {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ' ' && !quoted:
			if current.Len() > 0 {
				out = append(out, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}
