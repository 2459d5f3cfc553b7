package api

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope: {"detail": "<message>"}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// validationResponse is the envelope of request validation failures.
type validationResponse struct {
	Detail []validationIssue `json:"detail"`
}

type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var errorStatus = []struct {
	err  error
	code int
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrInvalidRefresh, http.StatusUnauthorized},
	{domain.ErrInactiveAccount, http.StatusForbidden},
	{domain.ErrUnverifiedAccount, http.StatusForbidden},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrCartItemNotFound, http.StatusNotFound},
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrUserExists, http.StatusBadRequest},
	{domain.ErrInvalidVerifyToken, http.StatusBadRequest},
	{domain.ErrInvalidResetToken, http.StatusBadRequest},
	{domain.ErrAlreadyVerified, http.StatusBadRequest},
	{domain.ErrIncorrectPassword, http.StatusBadRequest},
	{domain.ErrInsufficientStock, http.StatusBadRequest},
	{domain.ErrProductInactive, http.StatusBadRequest},
	{domain.ErrEmptyOrder, http.StatusBadRequest},
	{domain.ErrSlugTaken, http.StatusBadRequest},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Renders validation failures as a list of {loc, msg} issues with 422.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var vErr *domain.ValidationError
		if errors.As(err, &vErr) && len(vErr.Issues) > 0 {
			_ = c.JSON(http.StatusUnprocessableEntity, validationBody(vErr))
			return
		}

		code := StatusOf(err)
		msg := detailOf(err, code)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

// StatusOf returns the status code rendered for err.
func StatusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	if errors.Is(err, domain.ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return http.StatusInternalServerError
}

func detailOf(err error, code int) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}
	if code == http.StatusInternalServerError {
		return "Internal server error"
	}
	return upperFirst(err.Error())
}

func validationBody(vErr *domain.ValidationError) validationResponse {
	issues := make([]validationIssue, 0, len(vErr.Issues))
	for _, is := range vErr.Issues {
		issues = append(issues, validationIssue{
			Loc:  []string{"body", is.Field},
			Msg:  is.Message,
			Type: "value_error",
		})
	}
	return validationResponse{Detail: issues}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
