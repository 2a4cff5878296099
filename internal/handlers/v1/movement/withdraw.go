package movement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// WithdrawBody is the request body for a withdrawal.
type WithdrawBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" required:"true" doc:"Account number"`
	Secret        string `json:"secret" minLength:"1" required:"true" doc:"Account credential"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount to withdraw"`
}

// WithdrawInput is the Huma input for a withdrawal.
type WithdrawInput struct {
	Body WithdrawBody
}

// WithdrawOutput is the Huma output for a withdrawal.
type WithdrawOutput struct {
	Body BalanceResponse
}

// WithdrawHandler handles POST /v1/movement/withdraw.
type WithdrawHandler struct {
	Operator actionProcessor
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op actionProcessor) *WithdrawHandler {
	return &WithdrawHandler{Operator: op}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/movement/withdraw",
		Summary:     "Withdraw",
		Description: "Subtracts the amount from the account balance and records a withdrawal movement.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func parseWithdrawInput(input *WithdrawInput) (*actions.Withdraw, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return &actions.Withdraw{
		AccountNumber: input.Body.AccountNumber,
		Secret:        input.Body.Secret,
		Amount:        amount,
	}, nil
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseWithdrawInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("withdrawMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, ledgerError(err, "failed to withdraw")
	}

	return &WithdrawOutput{Body: BalanceResponse{
		AccountNumber: action.AccountNumber,
		Balance:       action.NewBalance.String(),
	}}, nil
}
