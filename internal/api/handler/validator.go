package handler

import (
	"github.com/99minutos/storefront/internal/pkg/validation"
)

// echoValidator adapts the shared validator so Echo can call c.Validate(req).
// Failures are *domain.ValidationError values carrying per-field issues.
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
