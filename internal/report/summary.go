package report

import (
	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// Summary is the consolidated position across every shipment: all seeded
// advances against all spending in all three collections. This is a wider
// scope than ShipmentBalance, which nets only expenses per shipment; the two
// are intentionally kept separate.
type Summary struct {
	TotalAdvanced decimal.Decimal
	ExpenseTotal  decimal.Decimal
	FuelCost      decimal.Decimal
	ParkingTotal  decimal.Decimal
	TotalSpent    decimal.Decimal
	Remaining     decimal.Decimal
}

// Summarize computes the global summary over full snapshots.
func Summarize(advances []model.CashAdvance, expenses []model.Expense, fuel []model.FuelEntry, parking []model.ParkingEntry) Summary {
	var s Summary
	for _, adv := range advances {
		s.TotalAdvanced = s.TotalAdvanced.Add(adv.Advanced)
	}
	for _, e := range expenses {
		s.ExpenseTotal = s.ExpenseTotal.Add(e.Amount)
	}
	for _, f := range fuel {
		s.FuelCost = s.FuelCost.Add(f.Cost())
	}
	for _, p := range parking {
		s.ParkingTotal = s.ParkingTotal.Add(p.Amount)
	}
	s.TotalSpent = s.ExpenseTotal.Add(s.FuelCost).Add(s.ParkingTotal)
	s.Remaining = s.TotalAdvanced.Sub(s.TotalSpent)
	return s
}
