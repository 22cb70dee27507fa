// Package report computes derived views over collection snapshots. Every
// function is pure and recomputes from scratch on each call, so results
// always reflect the latest store state with no cache to invalidate.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ShipmentBalance is the cash-advance position of a single shipment.
// Spent counts general expenses only; fuel and parking costs are folded in
// at the global Summary level, not per shipment.
type ShipmentBalance struct {
	ShipmentID string
	Advanced   decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
}

// Balances returns the per-shipment breakdown: seeded advances first in seed
// order, then shipments that only appear in expenses, in first-seen order.
// A shipment with expenses but no advance reports Advanced 0 and a negative
// Remaining.
func Balances(advances []model.CashAdvance, expenses []model.Expense) []ShipmentBalance {
	spent := make(map[string]decimal.Decimal)
	var spentOrder []string
	for _, e := range expenses {
		if _, seen := spent[e.ShipmentID]; !seen {
			spentOrder = append(spentOrder, e.ShipmentID)
		}
		spent[e.ShipmentID] = spent[e.ShipmentID].Add(e.Amount)
	}

	var out []ShipmentBalance
	covered := make(map[string]bool, len(advances))
	for _, adv := range advances {
		covered[adv.ShipmentID] = true
		s := spent[adv.ShipmentID]
		out = append(out, ShipmentBalance{
			ShipmentID: adv.ShipmentID,
			Advanced:   adv.Advanced,
			Spent:      s,
			Remaining:  adv.Advanced.Sub(s),
		})
	}

	for _, shipmentID := range spentOrder {
		if covered[shipmentID] {
			continue
		}
		s := spent[shipmentID]
		out = append(out, ShipmentBalance{
			ShipmentID: shipmentID,
			Spent:      s,
			Remaining:  s.Neg(),
		})
	}
	return out
}

// Balance returns the position of one shipment.
func Balance(advances []model.CashAdvance, expenses []model.Expense, shipmentID string) ShipmentBalance {
	for _, b := range Balances(advances, expenses) {
		if b.ShipmentID == shipmentID {
			return b
		}
	}
	return ShipmentBalance{ShipmentID: shipmentID}
}
