package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	Number        string
	OwnerDocument string
	OwnerName     string
	Secret        string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// AccountCreate is the input for creating a new account.
// The balance always starts at zero.
type AccountCreate struct {
	Number        string
	OwnerDocument string
	OwnerName     string
	Secret        string
}

func parseBalance(raw string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse balance %q: %w", raw, err)
	}
	return balance, nil
}

// Querier is the subset of database/sql satisfied by both *sql.DB and
// *sql.Tx, so the Reader can run against either.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
