package domain

import "time"

// Role is the account role reported by the storefront API.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is the read-only profile returned by GET /api/auth/me.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       Role      `json:"role"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may use the back-office endpoints.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate carries the editable profile fields. Empty fields are omitted
// from the request and left unchanged by the server.
type ProfileUpdate struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// Account is the reference API's stored user record. Secrets never leave the
// server; handlers render only the embedded User.
type Account struct {
	User
	PasswordHash      string
	VerificationToken string
	ResetToken        string
}
