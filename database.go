package chambercms

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// NewDatabase wraps an opened Postgres connection in a bun.DB ready for
// Dependencies.DB. The host owns the *sql.DB lifecycle, including driver
// choice and pooling.
func NewDatabase(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}
