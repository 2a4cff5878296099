package actions

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account numbers are nine-digit strings drawn at random. A collision is
// re-rolled; exhausting the budget means the number space is effectively
// full and the create fails.
const (
	accountNumberMin  = 100_000_000
	accountNumberSpan = 900_000_000
	createRetryBudget = 5
)

type CreateAccount struct {
	Profile ledger.AccountProfile

	// AccountNumber holds the assigned number after a successful Perform.
	AccountNumber string
}

func (c *CreateAccount) Key() string {
	return c.Profile.OwnerDocument
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	for attempt := 0; attempt < createRetryBudget; attempt++ {
		number := strconv.Itoa(accountNumberMin + rand.IntN(accountNumberSpan))

		existing, err := writer.Account.FindByNumber(ctx, number)
		if err != nil {
			return fmt.Errorf("check account number: %w", err)
		}
		if existing != nil {
			continue
		}

		err = writer.Account.Insert(ctx, &account.AccountCreate{
			Number:        number,
			OwnerDocument: c.Profile.OwnerDocument,
			OwnerName:     c.Profile.OwnerName,
			Secret:        c.Profile.Secret,
		})
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}

		c.AccountNumber = number
		return nil
	}

	return ledger.ErrDuplicateAccount
}
