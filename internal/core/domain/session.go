package domain

// Fixed storage keys of the persisted token pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenPair is the credential pair issued by POST /api/auth/login and
// POST /api/auth/refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

// IsZero reports whether no access token is present.
func (p TokenPair) IsZero() bool {
	return p.AccessToken == ""
}

// Session is a point-in-time snapshot of the authentication state.
type Session struct {
	User            *User
	IsAuthenticated bool
	IsLoading       bool
}
