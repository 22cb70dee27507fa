package query

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// FuelFilter is a conjunction of equality predicates over fuel fills.
type FuelFilter struct {
	ShipmentID string
	FillType   string
}

// Matches reports whether the fill satisfies every constrained dimension.
func (f FuelFilter) Matches(e model.FuelEntry) bool {
	if f.ShipmentID != All && f.ShipmentID != e.ShipmentID {
		return false
	}
	if f.FillType != All && f.FillType != string(e.FillType) {
		return false
	}
	return true
}

// FuelSort selects the fuel view sort key.
type FuelSort string

const (
	FuelByDate     FuelSort = "date"
	FuelByLiters   FuelSort = "liters"
	FuelByCost     FuelSort = "cost" // derived: liters x price-per-liter
	FuelByShipment FuelSort = "shipment"
)

// FuelEntries returns the filtered, sorted view of a fuel snapshot.
func FuelEntries(records []model.FuelEntry, filter FuelFilter, key FuelSort, dir Direction) []model.FuelEntry {
	out := make([]model.FuelEntry, 0, len(records))
	for _, e := range records {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}

	cmp := func(a, b model.FuelEntry) int {
		switch key {
		case FuelByLiters:
			return a.Liters.Cmp(b.Liters)
		case FuelByCost:
			return a.Cost().Cmp(b.Cost())
		case FuelByShipment:
			return strings.Compare(a.ShipmentID, b.ShipmentID)
		default:
			return compareTime(a.Date, b.Date)
		}
	}
	return ordered(out, cmp, dir)
}
