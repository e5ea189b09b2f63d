package jobhub

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ActiveTokensRepository implements SessionLedger using Bun.
type ActiveTokensRepository struct {
	db bun.IDB
}

var _ SessionLedger = (*ActiveTokensRepository)(nil)

// NewActiveTokensRepository creates the ledger repository.
func NewActiveTokensRepository(db bun.IDB) *ActiveTokensRepository {
	return &ActiveTokensRepository{db: db}
}

// Record inserts one ledger row for an issued token. Concurrent sign-ins
// for the same subject each get their own row.
func (r *ActiveTokensRepository) Record(ctx context.Context, subject uuid.UUID, token string) error {
	entry := &ActiveToken{
		ID:      uuid.New(),
		Subject: subject,
		Token:   token,
	}

	if _, err := r.db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to record active token")
	}
	return nil
}

// IsActive reports whether a row with this exact token string exists.
func (r *ActiveTokensRepository) IsActive(ctx context.Context, token string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*ActiveToken)(nil)).
		Where("?TableAlias.token = ?", token).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "failed to check active token")
	}
	return exists, nil
}

// Revoke deletes the single matching entry. A miss is an error, not a
// no-op: double logout surfaces a failure just like the source does.
func (r *ActiveTokensRepository) Revoke(ctx context.Context, token string) error {
	res, err := r.db.NewDelete().
		Model((*ActiveToken)(nil)).
		Where("?TableAlias.token = ?", token).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to revoke token")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to read revoke result")
	}

	if affected == 0 {
		return errors.New("no active session matches the token", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound).
			WithTextCode(TextCodeSessionNotFound)
	}

	return nil
}

// RevokeAll deletes every ledger entry for a subject. Used when an admin
// deletes the account.
func (r *ActiveTokensRepository) RevokeAll(ctx context.Context, subject uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*ActiveToken)(nil)).
		Where("?TableAlias.sub = ?", subject).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to revoke subject tokens")
	}
	return nil
}
