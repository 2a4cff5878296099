package storage

import (
	"database/sql"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

type Writer struct {
	tx       *sql.Tx
	Account  *account.Writer
	Movement *movement.Writer
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:       tx,
		Account:  account.NewWriter(tx),
		Movement: movement.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
