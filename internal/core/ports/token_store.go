package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

// TokenStore persists the session's token pair across process restarts.
// Load returns a zero TokenPair and a nil error when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (domain.TokenPair, error)
	Save(ctx context.Context, tokens domain.TokenPair) error
	Clear(ctx context.Context) error
}
