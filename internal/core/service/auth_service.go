package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenConfig controls token signing and lifetimes.
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService implements registration, login and account maintenance for the
// reference API.
type AuthService struct {
	repo   ports.UserRepository
	outbox ports.MailOutbox
	tokens TokenConfig
	log    zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.UserRepository, outbox ports.MailOutbox, tokens TokenConfig, log zerolog.Logger) *AuthService {
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = DefaultAccessTTL
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = DefaultRefreshTTL
	}
	return &AuthService{repo: repo, outbox: outbox, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		User: domain.User{
			Email:     email,
			FullName:  fullName,
			Role:      domain.RoleCustomer,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash:      string(hash),
		VerificationToken: uuid.NewString(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.outbox.Enqueue(domain.Mail{
		Kind:    domain.MailVerification,
		To:      created.Email,
		Subject: "Verify your email",
		Token:   created.VerificationToken,
	})
	s.log.Info().Int64("user_id", created.ID).Msg("account registered")

	user := created.User
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}
	if !account.IsActive {
		return domain.TokenPair{}, domain.ErrInactiveAccount
	}

	return s.issuePair(account.Email)
}

// Refresh exchanges a refresh token for a new pair. Both tokens rotate.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	sub, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidRefresh
	}
	account, err := s.repo.FindByEmail(ctx, sub)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.TokenPair{}, domain.ErrInvalidRefresh
	}
	if err != nil {
		return domain.TokenPair{}, err
	}
	return s.issuePair(account.Email)
}

func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	sub, err := s.parseToken(accessToken, tokenTypeAccess)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	account, err := s.repo.FindByEmail(ctx, sub)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	user := account.User
	return &user, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidVerifyToken
	}
	account, err := s.repo.FindByVerificationToken(ctx, token)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrInvalidVerifyToken
	}
	if err != nil {
		return err
	}

	account.IsVerified = true
	account.VerificationToken = ""
	return s.repo.Update(ctx, account)
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if account.IsVerified {
		return domain.ErrAlreadyVerified
	}

	account.VerificationToken = uuid.NewString()
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}
	s.outbox.Enqueue(domain.Mail{
		Kind:    domain.MailVerification,
		To:      account.Email,
		Subject: "Verify your email",
		Token:   account.VerificationToken,
	})
	return nil
}

// ForgotPassword issues a reset token. Unknown emails succeed silently so the
// endpoint does not reveal which addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	account.ResetToken = uuid.NewString()
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}
	s.outbox.Enqueue(domain.Mail{
		Kind:    domain.MailPasswordReset,
		To:      account.Email,
		Subject: "Reset your password",
		Token:   account.ResetToken,
	})
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return domain.ErrInvalidResetToken
	}
	account, err := s.repo.FindByResetToken(ctx, token)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrInvalidResetToken
	}
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	account.ResetToken = ""
	return s.repo.Update(ctx, account)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != "" {
		email := normalizeEmail(update.Email)
		if email != account.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				return nil, domain.ErrUserExists
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			account.Email = email
		}
	}
	if update.FullName != "" {
		account.FullName = update.FullName
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	user := account.User
	return &user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	return s.repo.Update(ctx, account)
}

func (s *AuthService) issuePair(email string) (domain.TokenPair, error) {
	access, err := s.signToken(email, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.signToken(email, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *AuthService) signToken(sub, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"type": typ,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.tokens.Secret))
}

// parseToken verifies signature, expiry and token type and returns the sub
// claim.
func (s *AuthService) parseToken(raw, wantType string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.tokens.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if typ, _ := claims["type"].(string); typ != wantType {
		return "", fmt.Errorf("unexpected token type %q", typ)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
