package movement

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const movementColumns = `id, account_number, category, amount, service_kind, reference, created_at`

type Reader struct {
	q Querier
}

func NewReader(q Querier) *Reader {
	return &Reader{q: q}
}

// List returns movements matching the filter. Nil filter returns everything,
// newest first. Ties on created_at resolve to the higher sequence ID first,
// so same-timestamp movements come back in reverse insertion order.
func (r *Reader) List(ctx context.Context, filter *MovementFilter) ([]*Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements`
	var args []any
	if filter != nil && filter.AccountNumber != "" {
		query += ` WHERE account_number = ?`
		args = append(args, filter.AccountNumber)
	}
	if filter != nil && filter.Ascending {
		query += ` ORDER BY id ASC`
	} else {
		query += ` ORDER BY created_at DESC, id DESC`
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Movement
	for rows.Next() {
		var mov Movement
		var amount string
		err := rows.Scan(&mov.ID, &mov.AccountNumber, &mov.Category, &amount,
			&mov.ServiceKind, &mov.Reference, &mov.CreatedAt)
		if err != nil {
			return nil, err
		}
		mov.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("movement %v: parse amount %q: %w", mov.ID, amount, err)
		}
		result = append(result, &mov)
	}
	return result, rows.Err()
}
