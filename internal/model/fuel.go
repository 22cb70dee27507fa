package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillType records whether a fuel stop topped the tank fully or partially.
type FillType string

const (
	FillFull    FillType = "full"
	FillPartial FillType = "partial"
)

// FuelEntry is one fuel fill recorded against a shipment.
type FuelEntry struct {
	ID             string
	ShipmentID     string
	DriverName     string
	PlateNumber    string
	FillType       FillType
	StationName    string
	FuelType       string // free text, e.g. "Diesel B7"
	Liters         decimal.Decimal
	PricePerLiter  decimal.Decimal
	OdometerBefore decimal.Decimal
	OdometerAfter  decimal.Decimal
	FleetCardID    string // empty = paid without a fleet card
	Date           time.Time
}

// Cost returns liters x price-per-liter.
func (f FuelEntry) Cost() decimal.Decimal {
	return f.Liters.Mul(f.PricePerLiter)
}

// Distance returns odometerAfter - odometerBefore in km. May be negative or
// zero when the readings are missing or entered out of order; callers that
// compute consumption must check CountsForEfficiency first.
func (f FuelEntry) Distance() decimal.Decimal {
	return f.OdometerAfter.Sub(f.OdometerBefore)
}

// CountsForEfficiency reports whether this entry may contribute to the
// km-per-liter aggregate: a strictly positive distance and a strictly
// positive volume. Entries that fail the check are excluded, not rejected.
func (f FuelEntry) CountsForEfficiency() bool {
	return f.OdometerAfter.GreaterThan(f.OdometerBefore) && f.Liters.IsPositive()
}
