package movement

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
)

// ExportMovementsInput is the Huma input for exporting the movement log.
type ExportMovementsInput struct{}

// ExportMovementsOutput is the raw download response: the full movement log
// as JSON Lines.
type ExportMovementsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// movementExporter is the interface for exporting the movement log.
type movementExporter interface {
	ExportMovements(ctx context.Context, w io.Writer) (int, error)
}

// ExportMovementsHandler handles GET /v1/movement/export.
type ExportMovementsHandler struct {
	MovementService movementExporter
}

// NewExportMovementsHandler creates a new ExportMovementsHandler.
func NewExportMovementsHandler(svc movementExporter) *ExportMovementsHandler {
	return &ExportMovementsHandler{MovementService: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportMovementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-movements",
		Method:      http.MethodGet,
		Path:        "/v1/movement/export",
		Summary:     "Export movements",
		Description: "Downloads the full movement log as JSON Lines, in insertion order.",
		Tags:        []string{"Movements"},
	}, h.handle)
}

func (h *ExportMovementsHandler) handle(ctx context.Context, _ *ExportMovementsInput) (*ExportMovementsOutput, error) {
	logData := logging.GetLogData(ctx)

	var buf bytes.Buffer
	count, err := h.MovementService.ExportMovements(ctx, &buf)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to export movements", err)
	}

	if logData != nil {
		logData.AddData("movementCount", count)
	}

	return &ExportMovementsOutput{
		ContentType:        "application/jsonl",
		ContentDisposition: `attachment; filename="movements.jsonl"`,
		Body:               buf.Bytes(),
	}, nil
}
