package ledger

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

// ExportedMovement is the portable representation of one movement, one JSON
// object per line in an export.
type ExportedMovement struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	ServiceKind   string `json:"serviceKind,omitempty"`
	Reference     string `json:"reference,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// ExportMovements serializes the full movement log to w as JSON Lines, in
// insertion order. It carries no account data and performs no validation.
// Returns the number of movements written.
func (s *MovementService) ExportMovements(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.storage.Movements.List(ctx, &movement.MovementFilter{Ascending: true})
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	for i, row := range rows {
		mov := movementFromStorage(row)
		record := ExportedMovement{
			ID:            mov.ID,
			AccountNumber: mov.AccountNumber,
			Category:      mov.Category.String(),
			Amount:        mov.Amount.String(),
			ServiceKind:   mov.ServiceKind,
			Reference:     mov.Reference,
			CreatedAt:     mov.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := enc.Encode(&record); err != nil {
			return i, fmt.Errorf("encode movement %v: %w", mov.ID, err)
		}
	}
	return len(rows), nil
}

// DecodeExport parses a JSON Lines export back into its records. Blank lines
// are skipped.
func DecodeExport(r io.Reader) ([]ExportedMovement, error) {
	var records []ExportedMovement
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record ExportedMovement
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("line %v: %w", len(records)+1, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
