package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

type Storage struct {
	DB        *sql.DB
	Accounts  *account.Reader
	Movements *movement.Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	return Open(env.DatabasePath)
}

// Open opens (creating if necessary) the SQLite database at path and brings
// the schema up to date.
func Open(path string) (*Storage, error) {
	dsn := "file:" + path + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Storage{
		DB:        db,
		Accounts:  account.NewReader(db),
		Movements: movement.NewReader(db),
	}, nil
}

// Write begins a storage transaction. Everything done through the returned
// Writer becomes visible atomically on Commit, or not at all on Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
