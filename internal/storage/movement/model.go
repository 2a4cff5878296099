package movement

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a movement. The sign of the balance change is implied
// by the category: deposits add, withdrawals and service payments subtract.
type Category int8

const (
	CategoryDeposit Category = iota
	CategoryWithdrawal
	CategoryServicePayment
)

func (c Category) String() string {
	switch c {
	case CategoryDeposit:
		return "deposit"
	case CategoryWithdrawal:
		return "withdrawal"
	case CategoryServicePayment:
		return "service-payment"
	}
	return "unknown"
}

// Movement represents one immutable movement record. Amount is the unsigned
// magnitude of the balance change.
type Movement struct {
	ID            int64
	AccountNumber string
	Category      Category
	Amount        decimal.Decimal
	ServiceKind   string
	Reference     string
	CreatedAt     time.Time
}

// MovementCreate is the input for appending a movement. The sequence ID is
// assigned by the store.
type MovementCreate struct {
	AccountNumber string
	Category      Category
	Amount        decimal.Decimal
	ServiceKind   string
	Reference     string
	CreatedAt     time.Time
}

// MovementFilter specifies filters for listing movements. Zero values apply
// no filtering.
type MovementFilter struct {
	AccountNumber string
	// Ascending lists in insertion order instead of the default
	// newest-first order.
	Ascending bool
}

// Querier is the subset of database/sql satisfied by both *sql.DB and
// *sql.Tx, so the Reader can run against either.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
