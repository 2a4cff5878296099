package movement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// ListMovementsBody is the request body for listing movements.
type ListMovementsBody struct {
	AccountNumber string `json:"accountNumber,omitempty" doc:"Restrict to one account; empty lists the whole log"`
}

// ListMovementsInput is the Huma input for listing movements.
type ListMovementsInput struct {
	Body ListMovementsBody
}

// ListMovementsResponseBody is the response body for listing movements.
type ListMovementsResponseBody struct {
	Movements []Movement `json:"movements" doc:"Movements, newest first"`
}

// ListMovementsOutput is the Huma output for listing movements.
type ListMovementsOutput struct {
	Body ListMovementsResponseBody
}

// movementLister is the interface for listing movements.
type movementLister interface {
	ListMovements(ctx context.Context, accountNumber string) ([]ledger.Movement, error)
}

// ListMovementsHandler handles POST /v1/movement/list.
type ListMovementsHandler struct {
	MovementService movementLister
}

// NewListMovementsHandler creates a new ListMovementsHandler.
func NewListMovementsHandler(svc movementLister) *ListMovementsHandler {
	return &ListMovementsHandler{MovementService: svc}
}

// Register registers the list movements endpoint with the Huma API.
func (h *ListMovementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-movements",
		Method:      http.MethodPost,
		Path:        "/v1/movement/list",
		Summary:     "List movements",
		Description: "Returns the movement history ordered by timestamp descending, newest-inserted first on ties.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func (h *ListMovementsHandler) handle(ctx context.Context, input *ListMovementsInput) (*ListMovementsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listMovementsMs")
	}
	movements, err := h.MovementService.ListMovements(ctx, input.Body.AccountNumber)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list movements", err)
	}

	if logData != nil {
		logData.AddData("movementCount", len(movements))
	}

	resp := ListMovementsResponseBody{
		Movements: make([]Movement, len(movements)),
	}
	for i, mov := range movements {
		resp.Movements[i] = movementFromService(mov)
	}

	return &ListMovementsOutput{Body: resp}, nil
}
