package report

import (
	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// RatioPlaceholder is rendered for ratio aggregates with a zero denominator.
const RatioPlaceholder = "—"

// CardUsage accumulates fuel spend per fleet card for reconciliation
// against card statements. CardID "" collects fills paid without a card.
type CardUsage struct {
	CardID string
	Fills  int
	Liters decimal.Decimal
	Cost   decimal.Decimal
}

// ReconcileCards groups fuel fills by fleet card, in first-seen order.
func ReconcileCards(entries []model.FuelEntry) []CardUsage {
	groups := make(map[string]*CardUsage)
	var order []string
	for _, e := range entries {
		g, seen := groups[e.FleetCardID]
		if !seen {
			g = &CardUsage{CardID: e.FleetCardID}
			groups[e.FleetCardID] = g
			order = append(order, e.FleetCardID)
		}
		g.Fills++
		g.Liters = g.Liters.Add(e.Liters)
		g.Cost = g.Cost.Add(e.Cost())
	}

	out := make([]CardUsage, 0, len(order))
	for _, cardID := range order {
		out = append(out, *groups[cardID])
	}
	return out
}

// FuelTotals sums volume and cost over all fills, whatever their odometer
// readings look like.
func FuelTotals(entries []model.FuelEntry) (liters, cost decimal.Decimal) {
	for _, e := range entries {
		liters = liters.Add(e.Liters)
		cost = cost.Add(e.Cost())
	}
	return liters, cost
}

// Efficiency returns km per liter over the fills with a positive distance
// and a positive volume. Fills with out-of-order or missing odometer
// readings are excluded from both sides of the ratio. ok is false when no
// fill qualifies; the ratio is then undefined, not zero.
func Efficiency(entries []model.FuelEntry) (kmPerLiter decimal.Decimal, ok bool) {
	var km, liters decimal.Decimal
	for _, e := range entries {
		if !e.CountsForEfficiency() {
			continue
		}
		km = km.Add(e.Distance())
		liters = liters.Add(e.Liters)
	}
	if liters.IsZero() {
		return decimal.Zero, false
	}
	return km.Div(liters), true
}

// AveragePrice returns total cost over total liters across all fills.
// ok is false when the collection holds no volume.
func AveragePrice(entries []model.FuelEntry) (pricePerLiter decimal.Decimal, ok bool) {
	liters, cost := FuelTotals(entries)
	if liters.IsZero() {
		return decimal.Zero, false
	}
	return cost.Div(liters), true
}

// FormatRatio renders a ratio aggregate, using the placeholder when the
// value is undefined.
func FormatRatio(v decimal.Decimal, ok bool) string {
	if !ok {
		return RatioPlaceholder
	}
	return v.StringFixed(2)
}
