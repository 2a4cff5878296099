package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

// MovementService handles movement reads.
type MovementService struct {
	storage *storage.Storage
}

// NewMovementService creates a new MovementService.
func NewMovementService(store *storage.Storage) *MovementService {
	return &MovementService{storage: store}
}

// ListMovements returns the movement history, newest first. Movements with
// equal timestamps come back newest-inserted first. An empty accountNumber
// lists the whole log.
func (s *MovementService) ListMovements(ctx context.Context, accountNumber string) ([]Movement, error) {
	rows, err := s.storage.Movements.List(ctx, &movement.MovementFilter{
		AccountNumber: accountNumber,
	})
	if err != nil {
		return nil, err
	}

	result := make([]Movement, len(rows))
	for i, row := range rows {
		result[i] = movementFromStorage(row)
	}
	return result, nil
}

// CheckConsistency recomputes the signed sum of the account's movements and
// compares it with the stored balance. Equality of the two is the core
// correctness property of the ledger.
func (s *MovementService) CheckConsistency(ctx context.Context, accountNumber string) error {
	acct, err := s.storage.Accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return err
	}
	if acct == nil {
		return ErrAccountNotFound
	}

	rows, err := s.storage.Movements.List(ctx, &movement.MovementFilter{
		AccountNumber: accountNumber,
	})
	if err != nil {
		return err
	}

	sum := decimal.Zero
	for _, row := range rows {
		mov := movementFromStorage(row)
		sum = sum.Add(mov.SignedAmount())
	}

	if !sum.Equal(acct.Balance) {
		return fmt.Errorf("account %v: stored balance %v does not match movement sum %v",
			accountNumber, acct.Balance, sum)
	}
	return nil
}
