package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// LoginBody is the request body for a credential check.
type LoginBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" required:"true" doc:"Account number"`
	Secret        string `json:"secret" minLength:"1" required:"true" doc:"Account credential"`
}

// LoginInput is the Huma input for a credential check.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for a credential check.
type LoginOutput struct {
	Body Account
}

// authenticator is the interface for checking credentials.
type authenticator interface {
	Authenticate(ctx context.Context, number, secret string) (*ledger.Account, error)
}

// LoginHandler handles POST /v1/account/login.
type LoginHandler struct {
	AccountService authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AccountService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/account/login",
		Summary:     "Check credentials",
		Description: "Verifies the account credential and returns the account snapshot.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	acct, err := h.AccountService.Authenticate(ctx, input.Body.AccountNumber, input.Body.Secret)
	if err != nil {
		return nil, ledgerError(err, "failed to check credentials")
	}

	return &LoginOutput{Body: accountFromService(acct)}, nil
}
