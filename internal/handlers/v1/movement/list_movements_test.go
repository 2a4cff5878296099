package movement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// mockMovementService is a mock for movementLister.
type mockMovementService struct {
	mock.Mock
}

func (m *mockMovementService) ListMovements(ctx context.Context, accountNumber string) ([]ledger.Movement, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Movement), args.Error(1)
}

func testMovements() []ledger.Movement {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []ledger.Movement{
		{
			ID:            2,
			AccountNumber: "123456789",
			Category:      ledger.CategoryWithdrawal,
			Amount:        decimal.RequireFromString("30000"),
			CreatedAt:     base.Add(time.Hour),
		},
		{
			ID:            1,
			AccountNumber: "123456789",
			Category:      ledger.CategoryDeposit,
			Amount:        decimal.RequireFromString("100000"),
			CreatedAt:     base,
		},
	}
}

func TestHTTP_ListMovements_ForAccount(t *testing.T) {
	mockSvc := new(mockMovementService)
	mockSvc.On("ListMovements", mock.Anything, "123456789").Return(testMovements(), nil)

	_, api := humatest.New(t)
	NewListMovementsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/movement/list", map[string]any{
		"accountNumber": "123456789",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListMovementsResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	if assert.Len(t, body.Movements, 2) {
		assert.Equal(t, int64(2), body.Movements[0].ID)
		assert.Equal(t, "withdrawal", body.Movements[0].Category)
		assert.Equal(t, "30000", body.Movements[0].Amount)
		assert.Equal(t, int64(1), body.Movements[1].ID)
		assert.Equal(t, "deposit", body.Movements[1].Category)
	}
}

func TestHTTP_ListMovements_WholeLog(t *testing.T) {
	mockSvc := new(mockMovementService)
	mockSvc.On("ListMovements", mock.Anything, "").Return([]ledger.Movement{}, nil)

	_, api := humatest.New(t)
	NewListMovementsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/movement/list", map[string]any{})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListMovements_StorageFault(t *testing.T) {
	mockSvc := new(mockMovementService)
	mockSvc.On("ListMovements", mock.Anything, mock.Anything).Return(nil, errors.New("disk gone"))

	_, api := humatest.New(t)
	NewListMovementsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/movement/list", map[string]any{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
