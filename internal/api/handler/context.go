package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/core/domain"
)

// ContextUserKey is the echo.Context key under which the Auth middleware
// stores the authenticated *domain.User.
const ContextUserKey = "user"

// currentUser returns the user injected by the Auth middleware. Its absence
// means the route was mounted without authentication.
func currentUser(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(ContextUserKey).(*domain.User)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return u, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, &domain.ValidationError{
			Message: name + " must be a positive integer",
			Issues:  []domain.FieldIssue{{Field: name, Message: "must be a positive integer"}},
		}
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &domain.ValidationError{
			Message: name + " must be a non-negative integer",
			Issues:  []domain.FieldIssue{{Field: name, Message: "must be a non-negative integer"}},
		}
	}
	return n, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorDetail documents the error envelope rendered by the API error handler.
type errorDetail struct {
	Detail string `json:"detail"`
}
