package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	OwnerDocument string `json:"ownerDocument" minLength:"1" required:"true" doc:"Owner identity document"`
	OwnerName     string `json:"ownerName" minLength:"1" required:"true" doc:"Owner display name"`
	Secret        string `json:"secret" minLength:"1" required:"true" doc:"Credential used by withdrawals and payments"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	AccountNumber string `json:"accountNumber" doc:"Assigned account number"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// actionProcessor is the interface for submitting ledger mutations.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with a fresh account number and a zero balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.CreateAccount{
		Profile: ledger.AccountProfile{
			OwnerDocument: input.Body.OwnerDocument,
			OwnerName:     input.Body.OwnerName,
			Secret:        input.Body.Secret,
		},
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, ledgerError(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountNumber", action.AccountNumber)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{AccountNumber: action.AccountNumber},
	}, nil
}
