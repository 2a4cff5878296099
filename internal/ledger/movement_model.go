package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

// Category classifies a movement in the service layer.
type Category int8

const (
	CategoryDeposit Category = iota
	CategoryWithdrawal
	CategoryServicePayment
)

func (c Category) String() string {
	return movement.Category(c).String()
}

// CategoryFromString is the inverse of Category.String. It reports false for
// unrecognized names.
func CategoryFromString(name string) (Category, bool) {
	switch name {
	case "deposit":
		return CategoryDeposit, true
	case "withdrawal":
		return CategoryWithdrawal, true
	case "service-payment":
		return CategoryServicePayment, true
	}
	return 0, false
}

// Movement represents a movement in the service layer. Amount is the
// unsigned magnitude; the direction of the balance change follows from
// Category.
type Movement struct {
	ID            int64
	AccountNumber string
	Category      Category
	Amount        decimal.Decimal
	ServiceKind   string
	Reference     string
	CreatedAt     time.Time
}

// SignedAmount is the balance change the movement caused: positive for
// deposits, negative for withdrawals and service payments.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.Category == CategoryDeposit {
		return m.Amount
	}
	return m.Amount.Neg()
}

func movementFromStorage(row *movement.Movement) Movement {
	return Movement{
		ID:            row.ID,
		AccountNumber: row.AccountNumber,
		Category:      Category(row.Category),
		Amount:        row.Amount,
		ServiceKind:   row.ServiceKind,
		Reference:     row.Reference,
		CreatedAt:     row.CreatedAt,
	}
}
