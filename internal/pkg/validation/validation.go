// Package validation wraps go-playground/validator and renders failures as
// *domain.ValidationError with one readable clause per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/storefront/internal/core/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator instance. Field names are taken from
// the json tag so messages match the wire names ("full_name is required").
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates v and returns nil or a *domain.ValidationError.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	issues := make([]domain.FieldIssue, 0, len(ve))
	for _, fe := range ve {
		issue := domain.FieldIssue{Field: fe.Field(), Message: rule(fe)}
		issues = append(issues, issue)
		msgs = append(msgs, issue.Field+" "+issue.Message)
	}
	return &domain.ValidationError{Message: strings.Join(msgs, "; "), Issues: issues}
}

// rule renders the failed rule of fe without the field name.
func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
