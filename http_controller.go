package jobhub

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-jobhub/middleware/jwtware"
	"github.com/goliatone/go-router"
)

// Middleware is what route registration needs from the HTTP authenticator.
type Middleware interface {
	ProtectedRoute(cfg Config, errorHandler func(router.Context, error) error) router.MiddlewareFunc
	RequireRoles(roles ...UserRole) router.MiddlewareFunc
	MakeGuardErrorHandler() func(router.Context, error) error
}

// RegisterAuthRoutes mounts the sign-up, sign-in, and log-out endpoints.
func RegisterAuthRoutes[T any](app router.Router[T], opts ...AuthControllerOption) {
	controller := NewAuthController(opts...)

	app.Post(controller.Routes.SignUp, controller.SignUpPost).
		SetName("auth.sign-up.post")

	app.Post(controller.Routes.SignIn, controller.SignInPost).
		SetName("auth.sign-in.post")

	app.Post(controller.Routes.LogOut, controller.LogOutPost).
		SetName("auth.log-out.post")
}

type AuthControllerRoutes struct {
	SignUp string
	SignIn string
	LogOut string
}

type AuthController struct {
	Debug        bool
	Logger       Logger
	Auther       Authenticator
	Config       Config
	Routes       *AuthControllerRoutes
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Routes: &AuthControllerRoutes{
			SignUp: "/auth/sign-up",
			SignIn: "/auth/sign-in",
			LogOut: "/auth/log-out",
		},
	}

	c.ErrorHandler = func(ctx router.Context, err error) error {
		status, message := HTTPStatusFor(err)
		return Respond(ctx, status, message)
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Config == nil {
		panic("Missing Config in auth controller...")
	}

	return c
}

func WithAuthControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func WithAuthControllerAuther(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithAuthControllerConfig(cfg Config) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Config = cfg
		return c
	}
}

func WithAuthControllerRoutes(routes *AuthControllerRoutes) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if routes != nil {
			c.Routes = routes
		}
		return c
	}
}

// SignUpRequest is the registration payload
type SignUpRequest struct {
	Name          string     `form:"name" json:"name"`
	Email         string     `form:"email" json:"email"`
	Password      string     `form:"password" json:"password"`
	Phone         string     `form:"phone" json:"phone"`
	Birthday      *time.Time `form:"birthday" json:"birthday"`
	Gender        string     `form:"gender" json:"gender"`
	Role          string     `form:"role" json:"role"`
	Skill         []string   `form:"skill" json:"skill"`
	Certification []string   `form:"certification" json:"certification"`
}

// Validate will run validation rules
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.Length(0, 15)),
	)
}

func (a *AuthController) SignUpPost(ctx router.Context) error {
	payload := new(SignUpRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("Sign up parse payload", "error", err)
		return Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("Sign up validate payload", "error", err)
		return Respond(ctx, router.StatusBadRequest, err.Error())
	}

	msg := SignUpMessage{
		Name:          payload.Name,
		Email:         payload.Email,
		Password:      payload.Password,
		Phone:         payload.Phone,
		Birthday:      payload.Birthday,
		Gender:        payload.Gender,
		Role:          payload.Role,
		Skill:         payload.Skill,
		Certification: payload.Certification,
	}

	if err := a.Auther.SignUp(ctx.Context(), msg); err != nil {
		a.Logger.Error("Sign up error", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return Respond(ctx, router.StatusCreated, "Sign up successfully")
}

// SignInRequest is the credentials payload
type SignInRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *AuthController) SignInPost(ctx router.Context) error {
	payload := new(SignInRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("Sign in parse payload", "error", err)
		return Respond(ctx, router.StatusBadRequest, "Invalid request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("Sign in validate payload", "error", err)
		return Respond(ctx, router.StatusBadRequest, err.Error())
	}

	token, err := a.Auther.SignIn(ctx.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("Sign in error", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return RespondToken(ctx, router.StatusCreated, "Sign in successfully", token)
}

// LogOutPost revokes the bearer token carried by the request itself. An
// expired token can still be logged out; a token with no ledger row is a
// not-found failure rather than a silent success.
func (a *AuthController) LogOutPost(ctx router.Context) error {
	extractors := jwtware.GetExtractors(a.Config.GetTokenLookup(), a.Config.GetAuthScheme())

	raw, err := jwtware.ExtractRawTokenFromContext(ctx, extractors)
	if err != nil {
		a.Logger.Error("Log out token extraction", "error", err)
		return a.ErrorHandler(ctx, errors.Wrap(err, errors.CategoryAuth, "Invalid authentication token").
			WithCode(errors.CodeUnauthorized).
			WithTextCode(TextCodeTokenMalformed))
	}

	if err := a.Auther.Logout(ctx.Context(), raw); err != nil {
		a.Logger.Error("Log out error", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return Respond(ctx, router.StatusCreated, "Log out successfully")
}
