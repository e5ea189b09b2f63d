// Package database opens the sqlite store and creates the schema.
package database

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	jobhub "github.com/goliatone/go-jobhub"
	"github.com/goliatone/go-jobhub/marketplace"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Open connects to sqlite through the shim driver and wraps it in bun.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to open database")
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	// single writer; sqlite serializes writes anyway
	db.SetMaxOpenConns(1)

	return db, nil
}

var models = []any{
	(*jobhub.User)(nil),
	(*jobhub.ActiveToken)(nil),
	(*marketplace.JobCategory)(nil),
	(*marketplace.JobDetailCategory)(nil),
	(*marketplace.Job)(nil),
	(*marketplace.Comment)(nil),
	(*marketplace.HireJob)(nil),
}

type index struct {
	name    string
	model   any
	column  string
	unique  bool
}

var indexes = []index{
	{name: "idx_users_email", model: (*jobhub.User)(nil), column: "email", unique: true},
	{name: "idx_active_tokens_token", model: (*jobhub.ActiveToken)(nil), column: "token", unique: true},
	{name: "idx_active_tokens_sub", model: (*jobhub.ActiveToken)(nil), column: "sub"},
	{name: "idx_job_categories_name", model: (*marketplace.JobCategory)(nil), column: "name", unique: true},
	{name: "idx_job_detail_categories_name", model: (*marketplace.JobDetailCategory)(nil), column: "name", unique: true},
	{name: "idx_jobs_name", model: (*marketplace.Job)(nil), column: "name"},
}

// Bootstrap creates every table and index if missing. Idempotent; runs on
// every start.
func Bootstrap(ctx context.Context, db *bun.DB) error {
	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to create table")
		}
	}

	for _, idx := range indexes {
		q := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.column).
			IfNotExists()
		if idx.unique {
			q = q.Unique()
		}
		if _, err := q.Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to create index")
		}
	}

	return nil
}
