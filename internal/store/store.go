package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/simonvc/tripbudget/internal/ledger"
	_ "modernc.org/sqlite"
)

// Store owns the trip_expenses table in a single SQLite file. Writes go through
// a one-connection pool so appends and clears are serialized.
type Store struct {
	dsn    string
	writer *sql.DB
	reader *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &ledger.StorageError{Op: "create db directory", Err: err}
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &ledger.StorageError{Op: "open writer", Err: err}
	}
	writer.SetMaxOpenConns(1)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, &ledger.StorageError{Op: "open reader", Err: err}
	}
	reader.SetMaxOpenConns(runtime.NumCPU())

	s := &Store{dsn: dsn, writer: writer, reader: reader}

	if err := s.Initialize(context.Background()); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	err1 := s.writer.Close()
	err2 := s.reader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
