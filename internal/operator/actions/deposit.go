package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

type Deposit struct {
	AccountNumber string
	Amount        decimal.Decimal

	// NewBalance holds the balance after a successful Perform.
	NewBalance decimal.Decimal
}

func (d *Deposit) Key() string {
	return d.AccountNumber
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	if !d.Amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Account.FindByNumber(ctx, d.AccountNumber)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}
	if acct == nil {
		return ledger.ErrAccountNotFound
	}

	_, err = writer.Movement.Append(ctx, &movement.MovementCreate{
		AccountNumber: d.AccountNumber,
		Category:      movement.CategoryDeposit,
		Amount:        d.Amount,
	})
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}

	newBalance := acct.Balance.Add(d.Amount)
	if err := writer.Account.UpdateBalance(ctx, d.AccountNumber, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	d.NewBalance = newBalance
	return nil
}
