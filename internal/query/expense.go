package query

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ExpenseFilter is a conjunction of equality predicates over expenses.
// All (empty) fields are unconstrained.
type ExpenseFilter struct {
	ShipmentID string
	Category   string
	Approval   string
}

// Matches reports whether the expense satisfies every constrained dimension.
func (f ExpenseFilter) Matches(e model.Expense) bool {
	if f.ShipmentID != All && f.ShipmentID != e.ShipmentID {
		return false
	}
	if f.Category != All && f.Category != string(e.Category) {
		return false
	}
	if f.Approval != All && f.Approval != string(e.ApprovalStatus) {
		return false
	}
	return true
}

// ExpenseSort selects the expense view sort key.
type ExpenseSort string

const (
	ExpenseByDate     ExpenseSort = "date"
	ExpenseByAmount   ExpenseSort = "amount"
	ExpenseByShipment ExpenseSort = "shipment"
	ExpenseByCategory ExpenseSort = "category"
)

// Expenses returns the filtered, sorted view of an expense snapshot.
func Expenses(records []model.Expense, filter ExpenseFilter, key ExpenseSort, dir Direction) []model.Expense {
	out := make([]model.Expense, 0, len(records))
	for _, e := range records {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}

	cmp := func(a, b model.Expense) int {
		switch key {
		case ExpenseByAmount:
			return a.Amount.Cmp(b.Amount)
		case ExpenseByShipment:
			return strings.Compare(a.ShipmentID, b.ShipmentID)
		case ExpenseByCategory:
			return strings.Compare(string(a.Category), string(b.Category))
		default:
			return compareTime(a.Date, b.Date)
		}
	}
	return ordered(out, cmp, dir)
}
