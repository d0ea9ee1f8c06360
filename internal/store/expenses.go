package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/simonvc/tripbudget/internal/ledger"
)

// Append writes one expense and returns its id. created_at is always set here.
func (s *Store) Append(ctx context.Context, category string, amount int64, description string) (int64, error) {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, &ledger.StorageError{Op: "begin append", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO trip_expenses (category, amount, description, created_at) VALUES (?, ?, ?, ?)`,
		category, amount, description, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, &ledger.StorageError{Op: "insert expense", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &ledger.StorageError{Op: "insert expense id", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return 0, &ledger.StorageError{Op: "commit append", Err: err}
	}
	return id, nil
}

// ListAll returns every expense in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]ledger.Expense, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT id, category, amount, description, created_at FROM trip_expenses ORDER BY id`)
	if err != nil {
		return nil, &ledger.StorageError{Op: "list expenses", Err: err}
	}
	defer rows.Close()

	expenses := []ledger.Expense{}
	for rows.Next() {
		var (
			e           ledger.Expense
			category    sql.NullString
			amount      sql.NullInt64
			description sql.NullString
			createdAt   sql.NullString
		)
		if err := rows.Scan(&e.ID, &category, &amount, &description, &createdAt); err != nil {
			return nil, &ledger.StorageError{Op: "scan expense", Err: err}
		}
		e.Category = category.String
		e.Amount = amount.Int64
		e.Description = description.String
		e.CreatedAt = parseCreatedAt(createdAt.String)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &ledger.StorageError{Op: "list expenses", Err: err}
	}
	return expenses, nil
}

// ClearAll deletes every expense. Clearing an empty table is not an error.
func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.writer.ExecContext(ctx, `DELETE FROM trip_expenses`); err != nil {
		return &ledger.StorageError{Op: "clear expenses", Err: err}
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM trip_expenses`).Scan(&n); err != nil {
		return 0, &ledger.StorageError{Op: "count expenses", Err: err}
	}
	return n, nil
}

// Rows written by older tools carry a local ISO timestamp without a zone.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseCreatedAt(v string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
