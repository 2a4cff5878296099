package movement

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Movement is the API response model for a movement.
// It is used only for responses, not for request bodies.
type Movement struct {
	ID            int64  `json:"id" doc:"Movement sequence ID"`
	AccountNumber string `json:"accountNumber" doc:"Owning account number"`
	Category      string `json:"category" doc:"One of deposit, withdrawal, service-payment"`
	Amount        string `json:"amount" doc:"Unsigned decimal amount"`
	ServiceKind   string `json:"serviceKind,omitempty" doc:"Service kind for service payments"`
	Reference     string `json:"reference,omitempty" doc:"Service reference for service payments"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func movementFromService(mov ledger.Movement) Movement {
	return Movement{
		ID:            mov.ID,
		AccountNumber: mov.AccountNumber,
		Category:      mov.Category.String(),
		Amount:        mov.Amount.String(),
		ServiceKind:   mov.ServiceKind,
		Reference:     mov.Reference,
		CreatedAt:     mov.CreatedAt.Format(time.RFC3339),
	}
}

// BalanceResponse is the response body shared by the mutating endpoints.
type BalanceResponse struct {
	AccountNumber string `json:"accountNumber" doc:"Account number"`
	Balance       string `json:"balance" doc:"Decimal balance after the operation"`
}

// actionProcessor is the interface for submitting ledger mutations.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ledgerError translates a ledger sentinel into an HTTP error; anything else
// is an unexpected storage fault.
func ledgerError(err error, fallback string) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrMissingKind),
		errors.Is(err, ledger.ErrMissingReference):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrInvalidCredential):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return huma.NewError(http.StatusConflict, err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
