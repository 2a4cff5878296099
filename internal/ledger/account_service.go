package ledger

import (
	"context"
	"crypto/subtle"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// AccountService handles account reads.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves an account snapshot by number. The stored balance is
// the source of truth for reads; it is kept in lock-step with the movement
// log by the operator.
func (s *AccountService) GetAccount(ctx context.Context, number string) (*Account, error) {
	row, err := s.storage.Accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAccountNotFound
	}
	return accountFromStorage(row), nil
}

// Authenticate compares the secret against the stored one and returns the
// account snapshot on a match.
func (s *AccountService) Authenticate(ctx context.Context, number, secret string) (*Account, error) {
	row, err := s.storage.Accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(row.Secret), []byte(secret)) != 1 {
		return nil, ErrInvalidCredential
	}
	return accountFromStorage(row), nil
}
