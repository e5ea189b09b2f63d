package jobhub

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the users repository.
type Users interface {
	repository.Repository[*User]

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)

	Search(ctx context.Context, term string, limit, offset int) ([]*User, int, error)
	Page(ctx context.Context, limit, offset int) ([]*User, int, error)

	// DeleteWithSessions removes a user and every active-token row for
	// the subject in one transaction.
	DeleteWithSessions(ctx context.Context, id uuid.UUID) error
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
	_ UserStore                    = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	prepareUserDefaults(user)
	return a.Repository.CreateTx(ctx, tx, user)
}

func (a *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return a.GetByEmailTx(ctx, a.db, email)
}

func (a *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

// Search matches name or email against a substring term. An empty term
// behaves like Page.
func (a *users) Search(ctx context.Context, term string, limit, offset int) ([]*User, int, error) {
	records := []*User{}

	q := a.db.NewSelect().Model(&records)
	if term != "" {
		pattern := "%" + term + "%"
		q = q.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.
				Where("?TableAlias.name LIKE ?", pattern).
				WhereOr("?TableAlias.email LIKE ?", pattern)
		})
	}

	q = q.Order("usr.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(normalizeOffset(offset))
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.CategoryInternal, "failed to search users")
	}

	return records, total, nil
}

func (a *users) Page(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return a.Search(ctx, "", limit, offset)
}

func (a *users) DeleteWithSessions(ctx context.Context, id uuid.UUID) error {
	return a.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*User)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to delete user")
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to read delete result")
		}

		if affected == 0 {
			return repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"id": id.String(),
				})
		}

		_, err = tx.NewDelete().
			Model((*ActiveToken)(nil)).
			Where("?TableAlias.sub = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to purge user sessions")
		}

		return nil
	})
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	if record.Role == "" {
		record.Role = RoleUser
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
