package forms

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ExpenseForm is the raw input for a general expense.
type ExpenseForm struct {
	ShipmentID     string
	DriverName     string
	Category       string
	Description    string
	PaymentMethod  string
	Amount         string
	HasReceipt     bool
	ApprovalStatus string
	Date           string
}

// Record coerces the form into an Expense. ok is false when the shipment or
// the description is missing; the record is then discarded without error.
func (f ExpenseForm) Record() (model.Expense, bool) {
	if missing(f.ShipmentID) || missing(f.Description) {
		return model.Expense{}, false
	}

	status := model.ApprovalStatus(f.ApprovalStatus)
	if status == "" {
		status = model.ApprovalPending
	}

	return model.Expense{
		ShipmentID:     strings.TrimSpace(f.ShipmentID),
		DriverName:     strings.TrimSpace(f.DriverName),
		Category:       model.ExpenseCategory(f.Category),
		Description:    strings.TrimSpace(f.Description),
		PaymentMethod:  model.PaymentMethod(f.PaymentMethod),
		Amount:         parseAmount(f.Amount),
		HasReceipt:     f.HasReceipt,
		ApprovalStatus: status,
		Date:           parseDate(f.Date),
	}, true
}
