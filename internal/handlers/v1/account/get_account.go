package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// GetAccountInput is the Huma input for fetching an account snapshot.
type GetAccountInput struct {
	AccountNumber string `path:"accountNumber" doc:"Account number"`
}

// GetAccountOutput is the Huma output for fetching an account snapshot.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for reading account snapshots.
type accountGetter interface {
	GetAccount(ctx context.Context, number string) (*ledger.Account, error)
}

// GetAccountHandler handles GET /v1/account/{accountNumber}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountNumber}",
		Summary:     "Get an account",
		Description: "Returns the account profile and its current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	acct, err := h.AccountService.GetAccount(ctx, input.AccountNumber)
	if err != nil {
		return nil, ledgerError(err, "failed to get account")
	}

	return &GetAccountOutput{Body: accountFromService(acct)}, nil
}
