package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/me/shopadmin/pkg/model"
)

// LoginResult is the payload returned by POST /api/auth/login.
type LoginResult struct {
	Token string          `json:"token"`
	User  model.AdminUser `json:"user"`
}

// Login authenticates an admin against the platform API and returns
// the issued bearer token together with the account details.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	data, err := c.Post(ctx, nil, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse login response: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login response contained no token")
	}
	return &result, nil
}

// TokenExpiry extracts the expiry claim from a JWT bearer token.
// Returns the zero time when the token is not a JWT or carries no exp
// claim; callers treat that as "no known expiry".
func TokenExpiry(token string) time.Time {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return time.Time{}
	}
	return time.Unix(claims.Exp, 0)
}
