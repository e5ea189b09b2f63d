package jwtware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-router"
)

var (
	defaultTokenLookup = "header:" + router.HeaderAuthorization

	ErrJWTMissingOrMalformed = errors.New("missing or malformed JWT")
	// ErrSessionRevoked means the token verified but its ledger row is gone:
	// the user logged out or an admin deleted the account.
	ErrSessionRevoked = errors.New("Token could be revoked or The admin may delete this account.")
	ErrTokenExpired   = errors.New("Expired token")
	ErrRoleNotAllowed = errors.New("Forbidden resource")
)

// TokenVerifier validates token signature and structure without enforcing
// expiry. Mirrors the TokenService.Verify method from the root package,
// declared here to avoid an import cycle.
type TokenVerifier interface {
	Verify(tokenString string) (AuthClaims, error)
}

// SessionLedger reports whether an issued token is still honored.
type SessionLedger interface {
	IsActive(ctx context.Context, token string) (bool, error)
}

// AuthClaims mirrors the root package's claims interface.
type AuthClaims interface {
	Subject() string
	UserID() string
	Role() string
	HasRole(role string) bool
	Expires() time.Time
	IssuedAt() time.Time
}

// ValidationListener is invoked after a token passed every check but before
// the request proceeds.
type ValidationListener func(ctx router.Context, claims AuthClaims) error

type Config struct {
	Filter         func(router.Context) bool
	SuccessHandler router.HandlerFunc
	ErrorHandler   router.ErrorHandler
	ContextKey     string
	TokenLookup    string
	AuthScheme     string

	// TokenVerifier is required; it checks signature and structure only.
	TokenVerifier TokenVerifier

	// SessionLedger is required; a verified token is rejected unless its
	// ledger row still exists.
	SessionLedger SessionLedger

	// AllowedRoles is the per-route allow-list. Empty means any
	// authenticated identity passes.
	AllowedRoles []string

	// RoleChecker overrides the default exact-match comparison against
	// AllowedRoles.
	RoleChecker func(claims AuthClaims, role string) bool

	// Clock returns the instant used for the expiry comparison. Defaults
	// to time.Now; tests inject a fixed clock.
	Clock func() time.Time

	// ContextEnricher propagates claims to the standard Go context after
	// every check passed.
	ContextEnricher func(c context.Context, claims AuthClaims) context.Context

	ValidationListeners []ValidationListener
}

// New builds the auth guard middleware. The checks run in a fixed order:
// extraction, signature, ledger membership, expiry, role. Order matters
// because each failure carries a distinct message, and a revoked token is
// reported as revoked even when it already expired.
func New(config ...Config) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		cfg := GetDefaultConfig(config...)
		return func(ctx router.Context) error {
			if cfg.Filter != nil && cfg.Filter(ctx) {
				return ctx.Next()
			}

			raw, err := ExtractRawTokenFromContext(ctx, cfg.getExtractors())
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			claims, err := cfg.TokenVerifier.Verify(raw)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			active, err := cfg.SessionLedger.IsActive(ctx.Context(), raw)
			if err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			if !active {
				return cfg.ErrorHandler(ctx, ErrSessionRevoked)
			}

			if exp := claims.Expires(); !exp.IsZero() && exp.Before(cfg.Clock()) {
				return cfg.ErrorHandler(ctx, ErrTokenExpired)
			}

			if err := checkRoles(claims, cfg); err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			if err := cfg.runValidationListeners(ctx, claims); err != nil {
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.Locals(cfg.ContextKey, claims)

			if cfg.ContextEnricher != nil {
				stdCtx := cfg.ContextEnricher(ctx.Context(), claims)
				ctx.SetContext(stdCtx)
			}

			return cfg.SuccessHandler(ctx)
		}
	}
}

func checkRoles(claims AuthClaims, cfg Config) error {
	if len(cfg.AllowedRoles) == 0 {
		return nil
	}

	matcher := cfg.RoleChecker
	if matcher == nil {
		matcher = func(c AuthClaims, role string) bool {
			return c.HasRole(role)
		}
	}

	for _, role := range cfg.AllowedRoles {
		if matcher(claims, role) {
			return nil
		}
	}

	return ErrRoleNotAllowed
}

func ExtractRawTokenFromContext(ctx router.Context, extractors []JWTExtractor) (string, error) {
	var raw string
	var err error

	for _, extractor := range extractors {
		raw, err = extractor(ctx)
		if raw != "" && err == nil {
			break
		}
	}

	return raw, err
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(ctx router.Context) error {
			return ctx.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c router.Context, err error) error {
			if err.Error() == ErrJWTMissingOrMalformed.Error() {
				return c.Status(router.StatusBadRequest).SendString(ErrJWTMissingOrMalformed.Error())
			}
			return c.Status(router.StatusUnauthorized).SendString("Invalid or expired token")
		}
	}

	if cfg.TokenVerifier == nil {
		panic("AUTH: JWT middleware configuration: TokenVerifier is required.")
	}

	if cfg.SessionLedger == nil {
		panic("AUTH: JWT middleware configuration: SessionLedger is required.")
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.TokenLookup == "" {
		cfg.TokenLookup = defaultTokenLookup
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return cfg
}

func (cfg *Config) getExtractors() []JWTExtractor {
	return GetExtractors(cfg.TokenLookup, cfg.AuthScheme)
}

func (cfg *Config) runValidationListeners(ctx router.Context, claims AuthClaims) error {
	for _, listener := range cfg.ValidationListeners {
		if listener == nil {
			continue
		}
		if err := listener(ctx, claims); err != nil {
			return err
		}
	}
	return nil
}

func GetExtractors(tokenLookup string, authSchemes ...string) []JWTExtractor {
	extractors := make([]JWTExtractor, 0)

	authScheme := "Bearer"
	if len(authSchemes) > 0 {
		authScheme = authSchemes[0]
	}

	// header:Authorization,cookie:jwt,query:auth_token,param:token
	rootParts := strings.Split(tokenLookup, ",")
	for _, rootPart := range rootParts {
		parts := strings.Split(strings.TrimSpace(rootPart), ":")

		for i, el := range parts {
			parts[i] = strings.TrimSpace(el)
		}

		switch parts[0] {
		case "header":
			extractors = append(extractors, jwtFromHeader(parts[1], authScheme))
		case "query":
			extractors = append(extractors, jwtFromQuery(parts[1]))
		case "param":
			extractors = append(extractors, jwtFromParam(parts[1]))
		case "cookie":
			extractors = append(extractors, jwtFromCookie(parts[1]))
		}
	}

	return extractors
}

type JWTExtractor func(c router.Context) (string, error)

// jwtFromHeader returns a function that extracts token from the request header.
func jwtFromHeader(header string, authScheme string) func(c router.Context) (string, error) {
	return func(c router.Context) (string, error) {
		a := c.GetString(header, "")
		l := len(authScheme)
		if l == 0 {
			fmt.Println("[WARNING] Missing auth scheme in config definition")
			return "", ErrJWTMissingOrMalformed
		}
		authScheme = strings.TrimSpace(authScheme)
		if len(a) > l+1 && strings.EqualFold(a[:l], authScheme) {
			return strings.TrimSpace(a[l:]), nil
		}
		return "", ErrJWTMissingOrMalformed
	}
}

// jwtFromQuery returns a function that extracts token from the query string.
func jwtFromQuery(param string) func(c router.Context) (string, error) {
	return func(c router.Context) (string, error) {
		token := c.Query(param, "")
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}

// jwtFromParam returns a function that extracts token from the url param string.
func jwtFromParam(param string) func(c router.Context) (string, error) {
	return func(c router.Context) (string, error) {
		token := c.Param(param)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}

// jwtFromCookie returns a function that extracts token from the named cookie.
func jwtFromCookie(name string) func(c router.Context) (string, error) {
	return func(c router.Context) (string, error) {
		token := c.Cookies(name)
		if token == "" {
			return "", ErrJWTMissingOrMalformed
		}
		return token, nil
	}
}
