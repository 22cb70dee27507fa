package forms

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// FuelForm is the raw input for a fuel fill.
type FuelForm struct {
	ShipmentID     string
	DriverName     string
	PlateNumber    string
	FillType       string
	StationName    string
	FuelType       string
	Liters         string
	PricePerLiter  string
	OdometerBefore string
	OdometerAfter  string
	FleetCardID    string
	Date           string
}

// ApplyShipmentDefaults fills driver, plate, and fleet card from the chosen
// shipment when the corresponding fields are still blank.
func (f *FuelForm) ApplyShipmentDefaults(s model.Shipment) {
	if missing(f.DriverName) {
		f.DriverName = s.DriverName
	}
	if missing(f.PlateNumber) {
		f.PlateNumber = s.PlateNumber
	}
	if missing(f.FleetCardID) {
		f.FleetCardID = s.FleetCardID
	}
}

// Record coerces the form into a FuelEntry. ok is false when the shipment
// or the station name is missing. Odometer readings are not validated;
// out-of-order readings only drop the entry from consumption aggregates.
func (f FuelForm) Record() (model.FuelEntry, bool) {
	if missing(f.ShipmentID) || missing(f.StationName) {
		return model.FuelEntry{}, false
	}

	fill := model.FillType(f.FillType)
	if fill == "" {
		fill = model.FillFull
	}

	return model.FuelEntry{
		ShipmentID:     strings.TrimSpace(f.ShipmentID),
		DriverName:     strings.TrimSpace(f.DriverName),
		PlateNumber:    strings.TrimSpace(f.PlateNumber),
		FillType:       fill,
		StationName:    strings.TrimSpace(f.StationName),
		FuelType:       strings.TrimSpace(f.FuelType),
		Liters:         parseAmount(f.Liters),
		PricePerLiter:  parseAmount(f.PricePerLiter),
		OdometerBefore: parseAmount(f.OdometerBefore),
		OdometerAfter:  parseAmount(f.OdometerAfter),
		FleetCardID:    strings.TrimSpace(f.FleetCardID),
		Date:           parseDate(f.Date),
	}, true
}
