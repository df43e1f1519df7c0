package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"dateonly": "{field} must be a calendar date in YYYY-MM-DD form",
}

// message renders the first validation error as a human-readable
// sentence, falling back to the library's own formatting for tags
// without a template.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		msg := strings.ReplaceAll(template, "{field}", valErr.Field())
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

		return msg
	}

	return valErrors.Error()
}
