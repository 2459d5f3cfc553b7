package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes. APIError and ValidationError match them through errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
)

// Client-side conditions that never reach the network.
var (
	ErrNoSession     = errors.New("no persisted session")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMalformedCart = errors.New("malformed cart response")
)

// Reference API conditions.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrUnverifiedAccount  = errors.New("email not verified")
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrInvalidVerifyToken = errors.New("invalid verification token")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInactive    = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrSlugTaken          = errors.New("product with this slug already exists")
)

// APIError is a non-2xx response from the storefront API. Detail holds the
// server's {"detail": ...} text verbatim and may be empty.
type APIError struct {
	Status int
	Detail string
	Method string
	Path   string
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// Is maps the HTTP status onto the error classes above.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}

// ValidationError is raised before a request is sent when its input breaks a
// precondition the server would reject anyway. Issues is set when the failure
// comes from struct validation.
type ValidationError struct {
	Message string
	Issues  []FieldIssue
}

// FieldIssue is one failed field rule; Message does not repeat the field name.
type FieldIssue struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Detail returns the text a UI should show for err: the server detail, the
// validation message, or fallback.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr.Message != "" {
		return vErr.Message
	}
	return fallback
}
