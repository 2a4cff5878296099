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

type PayService struct {
	AccountNumber string
	Secret        string
	ServiceKind   string
	Reference     string
	Amount        decimal.Decimal

	// NewBalance holds the balance after a successful Perform.
	NewBalance decimal.Decimal
}

func (p *PayService) Key() string {
	return p.AccountNumber
}

func (p *PayService) Perform(ctx context.Context, writer *storage.Writer) error {
	if p.ServiceKind == "" {
		return ledger.ErrMissingKind
	}
	if p.Reference == "" {
		return ledger.ErrMissingReference
	}
	if !p.Amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}

	acct, err := writer.Account.FindByNumber(ctx, p.AccountNumber)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}
	if acct == nil {
		return ledger.ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(acct.Secret), []byte(p.Secret)) != 1 {
		return ledger.ErrInvalidCredential
	}
	if p.Amount.GreaterThan(acct.Balance) {
		return ledger.ErrInsufficientFunds
	}

	_, err = writer.Movement.Append(ctx, &movement.MovementCreate{
		AccountNumber: p.AccountNumber,
		Category:      movement.CategoryServicePayment,
		Amount:        p.Amount,
		ServiceKind:   p.ServiceKind,
		Reference:     p.Reference,
	})
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}

	newBalance := acct.Balance.Sub(p.Amount)
	if err := writer.Account.UpdateBalance(ctx, p.AccountNumber, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	p.NewBalance = newBalance
	return nil
}
