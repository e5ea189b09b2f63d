package jobhub

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-jobhub/middleware/jwtware"
	"github.com/goliatone/go-router"
)

// Envelope is the uniform response body for auth endpoints:
// statusCode mirrors the HTTP status, token rides along on sign-in, and
// content carries handler payloads elsewhere.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Token      string `json:"token,omitempty"`
	Content    any    `json:"content,omitempty"`
}

// Respond writes an Envelope with matching HTTP status.
func Respond(ctx router.Context, status int, message string) error {
	return ctx.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
	})
}

// RespondToken writes the sign-in envelope.
func RespondToken(ctx router.Context, status int, message, token string) error {
	return ctx.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Token:      token,
	})
}

// RespondContent writes an envelope carrying a payload.
func RespondContent(ctx router.Context, status int, message string, content any) error {
	return ctx.JSON(status, Envelope{
		StatusCode: status,
		Message:    message,
		Content:    content,
	})
}

// RouteAuthenticator wires the authenticator, token service, and ledger
// into route middleware and shared error handling.
type RouteAuthenticator struct {
	auth         Authenticator
	cfg          Config
	tokenService TokenService
	ledger       SessionLedger
	Logger       Logger
	ErrorHandler func(c router.Context, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, tokenService TokenService, ledger SessionLedger, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:          cfg,
		auth:         auther,
		tokenService: tokenService,
		ledger:       ledger,
		Logger:       defLogger{},
	}

	a.ErrorHandler = a.defaultErrHandler

	return a, nil
}

func (a *RouteAuthenticator) WithLogger(logger Logger) *RouteAuthenticator {
	a.Logger = logger
	return a
}

// ProtectedRoute returns the auth guard: bearer extraction, signature
// check, ledger membership, then expiry. Roles are a separate middleware,
// see RequireRoles.
func (a *RouteAuthenticator) ProtectedRoute(cfg Config, errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return jwtware.New(jwtware.Config{
		ErrorHandler:  errorHandler,
		TokenVerifier: verifierAdapter{ts: a.tokenService},
		SessionLedger: a.ledger,
		AuthScheme:    cfg.GetAuthScheme(),
		ContextKey:    cfg.GetContextKey(),
		TokenLookup:   cfg.GetTokenLookup(),
		ContextEnricher: func(c context.Context, claims jwtware.AuthClaims) context.Context {
			return WithClaimsContext(c, claims)
		},
	})
}

// RequireRoles gates a route to an allow-list of roles. An empty list
// admits any authenticated identity. Must run after ProtectedRoute.
func (a *RouteAuthenticator) RequireRoles(roles ...UserRole) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			claims, ok := GetRouterClaims(ctx, a.cfg.GetContextKey())
			if !ok {
				return a.ErrorHandler(ctx, ErrUnableToFindSession)
			}

			if !RoleAllowed(claims.Role(), roles) {
				a.Logger.Warn("Role guard rejected request",
					"role", claims.Role(),
					"path", ctx.Path(),
				)
				return a.ErrorHandler(ctx, ErrForbiddenRole)
			}

			return ctx.Next()
		}
	}
}

// MakeGuardErrorHandler maps guard failures onto the response envelope.
// Ledger misses and expiry carry their own messages; everything else is
// a generic unauthenticated rejection.
func (a *RouteAuthenticator) MakeGuardErrorHandler() func(router.Context, error) error {
	return func(ctx router.Context, err error) error {
		var richErr *errors.Error

		switch {
		case err == jwtware.ErrSessionRevoked || IsRevokedError(err):
			richErr = ErrTokenRevoked
		case err == jwtware.ErrTokenExpired || IsTokenExpiredError(err):
			richErr = ErrTokenExpired
		case err == jwtware.ErrJWTMissingOrMalformed || IsMalformedError(err):
			richErr = ErrTokenMalformed
		default:
			richErr = errors.Wrap(err, errors.CategoryAuth, "Invalid authentication token").
				WithCode(errors.CodeUnauthorized)
		}

		a.Logger.Info("Auth guard rejected request",
			"error", richErr.Message,
			"text_code", richErr.TextCode,
			"path", ctx.Path(),
		)

		return a.ErrorHandler(ctx, richErr)
	}
}

func (a *RouteAuthenticator) defaultErrHandler(c router.Context, err error) error {
	status, message := HTTPStatusFor(err)
	return Respond(c, status, message)
}

// HTTPStatusFor resolves a status code and external message for an error.
// Structured errors carry their own mapping; anything else is a 500.
func HTTPStatusFor(err error) (int, string) {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		if errors.IsNotFound(err) {
			return router.StatusNotFound, "Not found"
		}
		return router.StatusInternalServerError, "Internal server error"
	}

	switch richErr.Category {
	case errors.CategoryAuth:
		return router.StatusUnauthorized, richErr.Message
	case errors.CategoryAuthz:
		return router.StatusForbidden, richErr.Message
	case errors.CategoryNotFound:
		return router.StatusNotFound, richErr.Message
	case errors.CategoryConflict, errors.CategoryBadInput, errors.CategoryValidation:
		// the source renders duplicate-email conflicts as 400
		return router.StatusBadRequest, richErr.Message
	case errors.CategoryRateLimit:
		return router.StatusTooManyRequests, richErr.Message
	default:
		return router.StatusInternalServerError, "Internal server error"
	}
}

type verifierAdapter struct {
	ts TokenService
}

func (v verifierAdapter) Verify(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := v.ts.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
