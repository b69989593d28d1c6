package model

import "time"

// Session represents an authenticated dashboard session. The bearer
// token issued by the platform API lives only here; handlers never read
// it from anywhere else.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Token     string    `json:"-"` // Platform API bearer token (not exposed via JSON)
	TokenExp  time.Time `json:"-"` // Token expiration (not exposed via JSON)
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsTokenExpired reports whether the platform API token has expired.
// A zero TokenExp means the API issued a token without an expiry claim.
func (s *Session) IsTokenExpired() bool {
	if s.TokenExp.IsZero() {
		return false
	}
	return time.Now().After(s.TokenExp)
}

// IsAdmin reports whether the session has admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == string(RoleAdmin)
}
