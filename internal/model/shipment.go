package model

import "github.com/shopspring/decimal"

// Shipment is a read-only reference record for a planned haul. The ledger
// never mutates shipments; they populate selection fields and provide
// default driver/plate/fleet-card values for new records.
type Shipment struct {
	ID          string
	Number      string // human-facing shipment number, e.g. "SHP-2025-014"
	DriverName  string
	PlateNumber string
	VehicleNo   string
	FleetCardID string
}

// CashAdvance grants a pre-authorized spending allowance to one shipment.
// Seeded once at startup and immutable for the life of the session.
type CashAdvance struct {
	ShipmentID string
	Advanced   decimal.Decimal
}
