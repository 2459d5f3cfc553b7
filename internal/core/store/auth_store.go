package store

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/infrastructure/metrics"
	"github.com/99minutos/storefront/internal/pkg/validation"
)

const (
	pathLogin              = "/api/auth/login"
	pathMe                 = "/api/auth/me"
	pathRegister           = "/api/auth/register"
	pathVerifyEmail        = "/api/auth/verify-email"
	pathResendVerification = "/api/auth/resend-verification"
	pathForgotPassword     = "/api/auth/forgot-password"
	pathResetPassword      = "/api/auth/reset-password"
	pathRefresh            = "/api/auth/refresh"
	pathProfile            = "/api/auth/profile"
	pathChangePassword     = "/api/auth/change-password"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=8"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// AuthStore owns the session: the persisted token pair and the cached profile
// of the current user. The user is authenticated exactly when a profile is
// loaded.
type AuthStore struct {
	api    ports.Backend
	tokens ports.TokenStore
	log    zerolog.Logger

	mu      sync.RWMutex
	user    *domain.User
	loading bool
}

func NewAuthStore(api ports.Backend, tokens ports.TokenStore, log zerolog.Logger) *AuthStore {
	return &AuthStore{
		api:    api,
		tokens: tokens,
		log:    log.With().Str("component", "auth_store").Logger(),
	}
}

// Login exchanges credentials for a token pair, persists it and loads the
// profile. The user becomes authenticated only once the profile is loaded.
// Server errors are returned unmodified.
func (s *AuthStore) Login(ctx context.Context, identifier, password string) error {
	if err := validation.Struct(loginInput{Username: identifier, Password: password}); err != nil {
		return err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	form := url.Values{}
	form.Set("username", identifier)
	form.Set("password", password)

	var pair domain.TokenPair
	if err := s.api.PostForm(ctx, pathLogin, form, &pair); err != nil {
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return err
	}
	if pair.AccessToken == "" {
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return &domain.APIError{Status: 502, Detail: "login response carried no access token", Method: "POST", Path: pathLogin}
	}

	if err := s.tokens.Save(ctx, pair); err != nil {
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return err
	}

	var user domain.User
	if err := s.api.Get(ctx, pathMe, &user); err != nil {
		// No tokens without a loaded user, including any previous one.
		s.resetSession(ctx)
		metrics.SessionEventsTotal.WithLabelValues("login_failed").Inc()
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("logged in")
	return nil
}

// Register creates an account. It never authenticates: the server requires
// email verification before the first login.
func (s *AuthStore) Register(ctx context.Context, email, fullName, password string) error {
	req := registerRequest{Email: email, FullName: fullName, Password: password}
	if err := validation.Struct(req); err != nil {
		return err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.Post(ctx, pathRegister, req, nil); err != nil {
		return err
	}
	s.log.Info().Msg("account registered, awaiting email verification")
	return nil
}

// Logout clears the persisted tokens and the cached profile. It is safe to
// call in any state; storage failures are logged, never returned.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear persisted tokens")
	}

	s.mu.Lock()
	wasAuthenticated := s.user != nil
	s.user = nil
	s.loading = false
	s.mu.Unlock()

	if wasAuthenticated {
		metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
		s.log.Info().Msg("logged out")
	}
}

// Hydrate rebuilds the session from the persisted tokens. Without an access
// token it resets to logged out and makes no request. Any failure fetching
// the profile is treated as an expired session: tokens are cleared and the
// store ends logged out. Hydrate never reports an error.
func (s *AuthStore) Hydrate(ctx context.Context) {
	pair, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read persisted tokens")
		s.resetSession(ctx)
		return
	}
	if pair.AccessToken == "" {
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	var user domain.User
	if err := s.api.Get(ctx, pathMe, &user); err != nil {
		metrics.SessionEventsTotal.WithLabelValues("hydrate_failed").Inc()
		s.log.Info().Err(err).Bool("expired", errors.Is(err, domain.ErrUnauthorized)).Msg("session could not be restored")
		s.resetSession(ctx)
		return
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	metrics.SessionEventsTotal.WithLabelValues("hydrated").Inc()
}

// FetchUser is Hydrate under the name pages use when they need a fresh profile.
func (s *AuthStore) FetchUser(ctx context.Context) {
	s.Hydrate(ctx)
}

// VerifyEmail submits an email verification token. Session state is untouched.
func (s *AuthStore) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return &domain.ValidationError{Message: "token is required"}
	}
	return s.api.Post(ctx, pathVerifyEmail+"?"+url.Values{"token": {token}}.Encode(), nil, nil)
}

// ResendVerification asks the server to send a new verification email.
func (s *AuthStore) ResendVerification(ctx context.Context, email string) error {
	if err := validation.Struct(emailRequest{Email: email}); err != nil {
		return err
	}
	return s.api.Post(ctx, pathResendVerification+"?"+url.Values{"email": {email}}.Encode(), nil, nil)
}

// RequestPasswordReset starts the password reset flow. The server answers the
// same way whether or not the email exists.
func (s *AuthStore) RequestPasswordReset(ctx context.Context, email string) error {
	req := emailRequest{Email: email}
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.api.Post(ctx, pathForgotPassword, req, nil)
}

// ResetPassword sets a new password using the token from the reset email.
func (s *AuthStore) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := resetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.api.Post(ctx, pathResetPassword, req, nil)
}

// UpdateProfile sends the profile change and then re-reads the profile from
// the server instead of patching the cached copy.
func (s *AuthStore) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	if update.FullName == "" && update.Email == "" {
		return &domain.ValidationError{Message: "nothing to update"}
	}
	if err := validation.Struct(update); err != nil {
		return err
	}
	if err := s.api.Put(ctx, pathProfile, update, nil); err != nil {
		return err
	}

	var user domain.User
	if err := s.api.Get(ctx, pathMe, &user); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// ChangePassword changes the password of the logged-in user.
func (s *AuthStore) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.api.Put(ctx, pathChangePassword, req, nil)
}

// RefreshSession trades the persisted refresh token for a new pair. It is
// never called implicitly; callers decide when a refresh is worth trying.
func (s *AuthStore) RefreshSession(ctx context.Context) error {
	pair, err := s.tokens.Load(ctx)
	if err != nil {
		return err
	}
	if pair.RefreshToken == "" {
		return domain.ErrNoSession
	}

	var next domain.TokenPair
	path := pathRefresh + "?" + url.Values{"refresh_token": {pair.RefreshToken}}.Encode()
	if err := s.api.Post(ctx, path, nil, &next); err != nil {
		return err
	}
	if next.AccessToken == "" {
		return &domain.APIError{Status: 502, Detail: "refresh response carried no access token", Method: "POST", Path: pathRefresh}
	}
	if err := s.tokens.Save(ctx, next); err != nil {
		return err
	}
	metrics.SessionEventsTotal.WithLabelValues("refreshed").Inc()
	return nil
}

// TokenExpiry reports the exp claim of the persisted access token. The
// signature is not verified; the result is advisory only.
func (s *AuthStore) TokenExpiry(ctx context.Context) (time.Time, bool) {
	pair, err := s.tokens.Load(ctx)
	if err != nil || pair.AccessToken == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(pair.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// User returns a copy of the current profile, or nil when logged out.
func (s *AuthStore) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Session returns a consistent snapshot of the auth state.
func (s *AuthStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var u *domain.User
	if s.user != nil {
		cp := *s.user
		u = &cp
	}
	return domain.Session{User: u, IsAuthenticated: u != nil, IsLoading: s.loading}
}

func (s *AuthStore) resetSession(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear persisted tokens")
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
