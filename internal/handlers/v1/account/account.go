package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Account is the API response model for an account snapshot. The credential
// secret is never part of a response.
type Account struct {
	AccountNumber string `json:"accountNumber" doc:"Nine-digit account number"`
	OwnerDocument string `json:"ownerDocument" doc:"Owner identity document"`
	OwnerName     string `json:"ownerName" doc:"Owner display name"`
	Balance       string `json:"balance" doc:"Decimal balance"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func accountFromService(acct *ledger.Account) Account {
	return Account{
		AccountNumber: acct.Number,
		OwnerDocument: acct.OwnerDocument,
		OwnerName:     acct.OwnerName,
		Balance:       acct.Balance.String(),
		CreatedAt:     acct.CreatedAt.Format(time.RFC3339),
	}
}

// ledgerError translates a ledger sentinel into an HTTP error; anything else
// is an unexpected storage fault.
func ledgerError(err error, fallback string) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrInvalidCredential):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ledger.ErrDuplicateAccount):
		return huma.NewError(http.StatusConflict, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
