package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, fullName, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	// Authenticate resolves an access token to its active user.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}
