package movement

import (
	"context"
	"database/sql"
	"time"
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

// Append stores a new movement and returns its assigned sequence ID.
// Movements are never updated or deleted afterwards.
func (w *Writer) Append(ctx context.Context, create *MovementCreate) (int64, error) {
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := w.tx.ExecContext(ctx,
		`INSERT INTO movements (account_number, category, amount, service_kind, reference, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		create.AccountNumber, create.Category, create.Amount.String(),
		create.ServiceKind, create.Reference, createdAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
