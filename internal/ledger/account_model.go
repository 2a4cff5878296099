package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account is an account snapshot in the service layer. The credential secret
// stays inside the storage layer and is never exposed here.
type Account struct {
	Number        string
	OwnerDocument string
	OwnerName     string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// AccountProfile is the input for creating a new account.
type AccountProfile struct {
	OwnerDocument string
	OwnerName     string
	Secret        string
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		Number:        row.Number,
		OwnerDocument: row.OwnerDocument,
		OwnerName:     row.OwnerName,
		Balance:       row.Balance,
		CreatedAt:     row.CreatedAt,
	}
}
