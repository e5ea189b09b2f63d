package jobhub

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// UserStore is the subset of the users repository the authenticator needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
}

// SignUpMessage carries a registration request.
type SignUpMessage struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	Phone         string     `json:"phone"`
	Birthday      *time.Time `json:"birthday"`
	Gender        string     `json:"gender"`
	Role          UserRole   `json:"role"`
	Skill         []string   `json:"skill"`
	Certification []string   `json:"certification"`
}

func (m SignUpMessage) Validate() error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&m,
			validation.Field(&m.Email, validation.Required, is.Email),
			validation.Field(&m.Password, validation.Required),
			validation.Field(&m.Name, validation.Required),
		)
	}, "invalid sign up payload")
}

// Auther implements Authenticator against a user store, a token service,
// and the active-session ledger.
type Auther struct {
	users        UserStore
	ledger       SessionLedger
	tokenService TokenService
	logger       Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator.
func NewAuthenticator(users UserStore, ledger SessionLedger, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		users:        users,
		ledger:       ledger,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the token service, mostly for tests.
func (s *Auther) WithTokenService(tokenService TokenService) *Auther {
	s.tokenService = tokenService
	return s
}

// TokenService returns the TokenService instance used by this Authenticator.
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// SignUp registers a new user. The email is pre-checked for friendliness;
// the unique constraint on users.email closes the race.
func (s *Auther) SignUp(ctx context.Context, msg SignUpMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	existing, err := s.users.GetByEmail(ctx, msg.Email)
	if err != nil && !errors.IsNotFound(err) {
		s.logger.Error("SignUp email lookup error", "error", err)
		return err
	}

	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := HashPassword(msg.Password)
	if err != nil {
		s.logger.Error("SignUp hash password error", "error", err)
		return err
	}

	user := &User{
		ID:            uuid.New(),
		Role:          msg.Role,
		Name:          msg.Name,
		Email:         msg.Email,
		PasswordHash:  hash,
		Phone:         msg.Phone,
		Birthday:      msg.Birthday,
		Gender:        msg.Gender,
		Skill:         JoinList(msg.Skill),
		Certification: JoinList(msg.Certification),
	}

	if _, err := s.users.Register(ctx, user); err != nil {
		s.logger.Error("SignUp create user error", "error", err)
		return err
	}

	return nil
}

// SignIn verifies credentials, mints a token, and records it in the
// ledger before returning it to the caller.
func (s *Auther) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", ErrIdentityNotFound
		}
		s.logger.Error("SignIn email lookup error", "error", err)
		return "", err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return "", err
	}

	token, err := s.tokenService.Generate(identityFromUser(user))
	if err != nil {
		s.logger.Error("SignIn token generation error", "error", err)
		return "", err
	}

	if err := s.ledger.Record(ctx, user.ID, token); err != nil {
		s.logger.Error("SignIn ledger record error", "error", err)
		return "", err
	}

	return token, nil
}

// Logout removes the token's ledger entry. Signature validity is not
// required here: revoking an expired token is still a valid request.
func (s *Auther) Logout(ctx context.Context, token string) error {
	return s.ledger.Revoke(ctx, token)
}

// RevokeAll invalidates every session for a subject.
func (s *Auther) RevokeAll(ctx context.Context, subject uuid.UUID) error {
	return s.ledger.RevokeAll(ctx, subject)
}

type userIdentity struct {
	id    string
	email string
	role  string
}

func (u userIdentity) ID() string    { return u.id }
func (u userIdentity) Email() string { return u.email }
func (u userIdentity) Role() string  { return u.role }

func identityFromUser(user *User) Identity {
	return userIdentity{
		id:    user.ID.String(),
		email: user.Email,
		role:  user.Role,
	}
}
