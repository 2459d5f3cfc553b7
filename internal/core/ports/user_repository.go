package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

// UserRepository persists reference API accounts. Lookups return
// domain.ErrUserNotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByVerificationToken(ctx context.Context, token string) (*domain.Account, error)
	FindByResetToken(ctx context.Context, token string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}
