package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const accountColumns = `account_number, owner_document, owner_name, secret, balance, created_at`

type Reader struct {
	q Querier
}

func NewReader(q Querier) *Reader {
	return &Reader{q: q}
}

// FindByNumber retrieves an account by its number. Returns (nil, nil) when
// no such account exists.
func (r *Reader) FindByNumber(ctx context.Context, number string) (*Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_number = ?`, number)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*Account, error) {
	var acct Account
	var balance string
	err := row.Scan(&acct.Number, &acct.OwnerDocument, &acct.OwnerName, &acct.Secret, &balance, &acct.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	acct.Balance, err = parseBalance(balance)
	if err != nil {
		return nil, fmt.Errorf("account %v: %w", acct.Number, err)
	}
	return &acct, nil
}
