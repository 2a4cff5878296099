package movement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// PayServiceBody is the request body for a service payment.
type PayServiceBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" required:"true" doc:"Account number"`
	Secret        string `json:"secret" minLength:"1" required:"true" doc:"Account credential"`
	ServiceKind   string `json:"serviceKind" required:"true" doc:"Kind of service being paid (e.g. water, electricity)"`
	Reference     string `json:"reference" required:"true" doc:"Service reference number"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount to pay"`
}

// PayServiceInput is the Huma input for a service payment.
type PayServiceInput struct {
	Body PayServiceBody
}

// PayServiceOutput is the Huma output for a service payment.
type PayServiceOutput struct {
	Body BalanceResponse
}

// PayServiceHandler handles POST /v1/movement/pay-service.
type PayServiceHandler struct {
	Operator actionProcessor
}

// NewPayServiceHandler creates a new PayServiceHandler.
func NewPayServiceHandler(op actionProcessor) *PayServiceHandler {
	return &PayServiceHandler{Operator: op}
}

// Register registers the pay service endpoint with the Huma API.
func (h *PayServiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pay-service",
		Method:      http.MethodPost,
		Path:        "/v1/movement/pay-service",
		Summary:     "Pay a service",
		Description: "Subtracts the amount from the account balance and records a service-payment movement carrying the service kind and reference.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func parsePayServiceInput(input *PayServiceInput) (*actions.PayService, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return &actions.PayService{
		AccountNumber: input.Body.AccountNumber,
		Secret:        input.Body.Secret,
		ServiceKind:   input.Body.ServiceKind,
		Reference:     input.Body.Reference,
		Amount:        amount,
	}, nil
}

func (h *PayServiceHandler) handle(ctx context.Context, input *PayServiceInput) (*PayServiceOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parsePayServiceInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("payServiceMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, ledgerError(err, "failed to pay service")
	}

	return &PayServiceOutput{Body: BalanceResponse{
		AccountNumber: action.AccountNumber,
		Balance:       action.NewBalance.String(),
	}}, nil
}
