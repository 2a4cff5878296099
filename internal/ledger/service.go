package ledger

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds the read side of the ledger. All mutations go through the
// operator instead, so each balance update commits together with its
// movement record.
type Service struct {
	Account  *AccountService
	Movement *MovementService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:  NewAccountService(store),
		Movement: NewMovementService(store),
	}
}
