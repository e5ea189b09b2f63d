package jobhub

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Session holds attributes decoded from an auth token
type Session interface {
	GetUserID() string
	GetUserUUID() (uuid.UUID, error)
	GetRole() string
	GetIssuedAt() *time.Time
	GetExpiration() *time.Time
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	SignUp(ctx context.Context, msg SignUpMessage) error
	SignIn(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, subject uuid.UUID) error
}

// Identity holds the attributes of an authenticated identity
type Identity interface {
	ID() string
	Email() string
	Role() string
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetContextKey() string
	GetTokenExpiration() int
	GetTokenLookup() string
	GetAuthScheme() string
	GetIssuer() string
	GetAudience() []string
}

// TokenService signs and verifies session tokens. Verify checks signature
// and structure only; expiry is an embedded claim the caller compares.
type TokenService interface {
	Generate(identity Identity) (string, error)
	SignClaims(claims *JWTClaims) (string, error)
	Verify(token string) (AuthClaims, error)
}

// SessionLedger tracks which issued tokens are still honored. A token is
// authenticated only while its ledger row exists.
type SessionLedger interface {
	Record(ctx context.Context, subject uuid.UUID, token string) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, subject uuid.UUID) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] JOBHUB "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] JOBHUB "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] JOBHUB "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] JOBHUB "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
