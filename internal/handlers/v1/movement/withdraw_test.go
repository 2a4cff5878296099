package movement

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newWithdrawTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewWithdrawHandler(op).Register(api)
	return api
}

func TestHTTP_Withdraw_Success(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		withdraw, ok := action.(*actions.Withdraw)
		return ok &&
			withdraw.AccountNumber == "123456789" &&
			withdraw.Secret == "1234" &&
			withdraw.Amount.Equal(decimal.RequireFromString("30000"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.Withdraw).NewBalance = decimal.RequireFromString("70000")
	}).Return(nil)

	api := newWithdrawTestAPI(t, mockOp)
	resp := api.Post("/v1/movement/withdraw", map[string]any{
		"accountNumber": "123456789",
		"secret":        "1234",
		"amount":        "30000",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body BalanceResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "123456789", body.AccountNumber)
	assert.Equal(t, "70000", body.Balance)
	mockOp.AssertExpectations(t)
}

func TestHTTP_Withdraw_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"account missing", ledger.ErrAccountNotFound, http.StatusNotFound},
		{"wrong credential", ledger.ErrInvalidCredential, http.StatusUnauthorized},
		{"insufficient funds", ledger.ErrInsufficientFunds, http.StatusConflict},
		{"non-positive amount", ledger.ErrInvalidAmount, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockOp := new(mockProcessor)
			mockOp.On("Process", mock.Anything, mock.Anything).Return(tc.err)

			api := newWithdrawTestAPI(t, mockOp)
			resp := api.Post("/v1/movement/withdraw", map[string]any{
				"accountNumber": "123456789",
				"secret":        "1234",
				"amount":        "30000",
			})

			assert.Equal(t, tc.wantStatus, resp.Code)
		})
	}
}

func TestHTTP_Withdraw_MalformedAmount(t *testing.T) {
	mockOp := new(mockProcessor)

	api := newWithdrawTestAPI(t, mockOp)
	resp := api.Post("/v1/movement/withdraw", map[string]any{
		"accountNumber": "123456789",
		"secret":        "1234",
		"amount":        "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
