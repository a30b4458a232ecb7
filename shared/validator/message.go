package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":          "{field} is required",
		"notblank":          "{field} is required",
		"oneof":             "{field} must be one of {param}",
		"max":               "{field} must be at most {param} characters",
		"min":               "{field} must be at least {param} characters",
		"uuid":              "{field} must be a valid id",
		"len":               "{field} must be {param} characters",
		"institution_email": "{field} must be a valid institutional email",
	}
)

// message renders the first validation error. Field names come from json tags.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl := messages[valErr.Tag()]
		if tmpl == "" {
			continue
		}

		tmpl = strings.ReplaceAll(tmpl, "{field}", valErr.Field())

		return strings.ReplaceAll(tmpl, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
