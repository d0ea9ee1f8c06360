package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/simonvc/tripbudget/internal/ledger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Initialize ensures the schema exists. Every migration is create-if-absent, so
// running it again, or against a file whose table predates the migration
// bookkeeping, leaves existing rows untouched.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &ledger.StorageError{Op: "initialize", Err: err}
	}

	// golang-migrate closes the handle it is given, so it gets its own.
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return &ledger.StorageError{Op: "open migration database", Err: err}
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return &ledger.StorageError{Op: "create migration driver", Err: err}
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return &ledger.StorageError{Op: "load migrations", Err: err}
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return &ledger.StorageError{Op: "create migrator", Err: err}
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return &ledger.StorageError{Op: "migrate", Err: err}
	}
	return nil
}
