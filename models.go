package jobhub

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserRole is the user's role
type UserRole = string

const (
	// RoleUser is a regular marketplace member
	RoleUser UserRole = "user"
	// RoleAdmin manages users, categories, and other members' records
	RoleAdmin UserRole = "admin"
)

// User is the user model
type User struct {
	bun.BaseModel  `bun:"table:users,alias:usr"`
	ID             uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Role           UserRole   `bun:"user_role,notnull" json:"role,omitempty"`
	Name           string     `bun:"name,notnull" json:"name,omitempty"`
	Email          string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash   string     `bun:"password_hash" json:"-"`
	Phone          string     `bun:"phone" json:"phone,omitempty"`
	Birthday       *time.Time `bun:"birthday,nullzero" json:"birthday,omitempty"`
	Gender         string     `bun:"gender" json:"gender,omitempty"`
	Skill          string     `bun:"skill" json:"-"`
	Certification  string     `bun:"certification" json:"-"`
	Avatar         string     `bun:"avatar" json:"avatar,omitempty"`
	CreatedAt      *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Skills splits the comma-joined skill column back into a list.
func (u *User) Skills() []string {
	return splitList(u.Skill)
}

// Certifications splits the comma-joined certification column back into a list.
func (u *User) Certifications() []string {
	return splitList(u.Certification)
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// JoinList stores a list the way the source stores skills and
// certifications: one comma-joined column.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}

// ActiveToken is one row of the active-session ledger. A row exists for
// every issued, not yet revoked token; its absence means the token is no
// longer honored regardless of signature validity.
type ActiveToken struct {
	bun.BaseModel `bun:"table:active_tokens,alias:atk"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Subject       uuid.UUID  `bun:"sub,notnull,type:uuid" json:"sub,omitempty"`
	Token         string     `bun:"token,notnull,unique" json:"token,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}
