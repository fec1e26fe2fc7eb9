// Package session exposes the process-wide auth token as explicit read-only
// state. The client core never mutates the token; login and logout are the
// outer application's responsibility.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

// TokenSource yields the bearer token attached to every authenticated call.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource around a fixed token string.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// Claims is the student identity carried inside the portal's access token.
type Claims struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	NIS     string `json:"nis"`
	ClassID int    `json:"kelas_id"`
	Role    string `json:"role"`

	jwt.RegisteredClaims
}

// Decode extracts claims from the token without verifying the signature. The
// client has no signing key; authenticity is the server's concern, the claims
// only drive display and request parameters.
func Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSessionExpired.Code, appErrors.ErrSessionExpired.Status, "malformed access token")
	}
	return claims, nil
}

// Expired reports whether the claims carry an expiry in the past.
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
