package jobhub

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the decoded token payload downstream handlers read
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() string
	HasRole(role string) bool
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims
type JWTClaims struct {
	jwt.RegisteredClaims
	UserRole string `json:"role,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID; the subject carries it
func (c *JWTClaims) UserID() string {
	return c.Subject()
}

// Role returns the role embedded at issue time
func (c *JWTClaims) Role() string {
	return c.UserRole
}

// HasRole checks if the token carries a specific role
func (c *JWTClaims) HasRole(role string) bool {
	return c.UserRole == role
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Expired compares the embedded expiry against now. The token service does
// not enforce this; the auth guard checks it after ledger membership.
func (c *JWTClaims) Expired(now time.Time) bool {
	exp := c.Expires()
	return !exp.IsZero() && exp.Before(now)
}
