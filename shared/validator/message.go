package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":   "{field} is required",
	"gt":         "{field} must be greater than {param}",
	"gte":        "{field} must be greater than or equal to {param}",
	"min":        "{field} must be at least {param}",
	"max":        "{field} must be at most {param}",
	"oneof":      "{field} must be one of {param}",
	"email":      "{field} must be a valid email address",
	"datetime":   "{field} must be a date in {param} format",
	"dive":       "{field} contains an invalid value",
	"domain":     "{field} is not a valid value",
	"phone":      "{field} must be a valid phone number",
	"dataurl":    "{field} must be a data url of type {param}",
	"dataurlmax": "{field} must be at most {param} MB",
}

// message reports the first failed rule as a sentence; rules without a template fall back
// to the library's text.
func message(err error) string {
	var errs val.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}

	first := errs[0]

	tmpl, ok := messages[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(tmpl)
}
