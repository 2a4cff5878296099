package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Writer struct {
	tx *sql.Tx
	Reader
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			q: tx,
		},
	}
}

// Insert creates a new account with a zero balance.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) error {
	_, err := w.tx.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		create.Number, create.OwnerDocument, create.OwnerName, create.Secret,
		decimal.Zero.String(), time.Now().UTC())
	return err
}

// UpdateBalance sets the balance for a given account.
func (w *Writer) UpdateBalance(ctx context.Context, number string, balance decimal.Decimal) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE accounts SET balance = ? WHERE account_number = ?`,
		balance.String(), number)
	return err
}
