package actions

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

type Withdraw struct {
	AccountNumber string
	Secret        string
	Amount        decimal.Decimal

	// NewBalance holds the balance after a successful Perform.
	NewBalance decimal.Decimal
}

func (w *Withdraw) Key() string {
	return w.AccountNumber
}

func (w *Withdraw) Perform(ctx context.Context, writer *storage.Writer) error {
	if !w.Amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Account.FindByNumber(ctx, w.AccountNumber)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}
	if acct == nil {
		return ledger.ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(acct.Secret), []byte(w.Secret)) != 1 {
		return ledger.ErrInvalidCredential
	}
	if w.Amount.GreaterThan(acct.Balance) {
		return ledger.ErrInsufficientFunds
	}

	_, err = writer.Movement.Append(ctx, &movement.MovementCreate{
		AccountNumber: w.AccountNumber,
		Category:      movement.CategoryWithdrawal,
		Amount:        w.Amount,
	})
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}

	newBalance := acct.Balance.Sub(w.Amount)
	if err := writer.Account.UpdateBalance(ctx, w.AccountNumber, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	w.NewBalance = newBalance
	return nil
}
