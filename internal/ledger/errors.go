package ledger

import "errors"

// Routine validation outcomes. Handlers translate these into user-facing
// responses; anything else surfacing from an operation is a storage fault.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidCredential = errors.New("credential does not match")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateAccount  = errors.New("could not assign a unique account number")
	ErrMissingReference  = errors.New("service reference is required")
	ErrMissingKind       = errors.New("service kind is required")
)
