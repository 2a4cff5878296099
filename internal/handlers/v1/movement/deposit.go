package movement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DepositBody is the request body for a deposit.
type DepositBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" required:"true" doc:"Account number"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount to deposit"`
}

// DepositInput is the Huma input for a deposit.
type DepositInput struct {
	Body DepositBody
}

// DepositOutput is the Huma output for a deposit.
type DepositOutput struct {
	Body BalanceResponse
}

// DepositHandler handles POST /v1/movement/deposit.
type DepositHandler struct {
	Operator actionProcessor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op actionProcessor) *DepositHandler {
	return &DepositHandler{Operator: op}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/movement/deposit",
		Summary:     "Deposit",
		Description: "Adds the amount to the account balance and records a deposit movement.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func parseDepositInput(input *DepositInput) (*actions.Deposit, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return &actions.Deposit{
		AccountNumber: input.Body.AccountNumber,
		Amount:        amount,
	}, nil
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseDepositInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("depositMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, ledgerError(err, "failed to deposit")
	}

	return &DepositOutput{Body: BalanceResponse{
		AccountNumber: action.AccountNumber,
		Balance:       action.NewBalance.String(),
	}}, nil
}
