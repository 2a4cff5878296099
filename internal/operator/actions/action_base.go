package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

type IAction interface {
	// Key routes the action to a worker queue. Actions sharing a key run
	// sequentially in submission order, which gives per-account mutual
	// exclusion when the key is the account number.
	Key() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
