package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

// Run applies all pending migrations. Safe to invoke on every process
// start: goose tracks applied versions in its own table.
func Run(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
