package forms

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ParkingForm is the raw input for a parking/rest stop.
type ParkingForm struct {
	ShipmentID string
	DriverName string
	RouteStage string
	Location   string
	PlaceType  string
	Start      string
	End        string
	Reason     string
	Amount     string
}

// ApplyShipmentDefaults fills the driver from the chosen shipment when the
// field is still blank.
func (f *ParkingForm) ApplyShipmentDefaults(s model.Shipment) {
	if missing(f.DriverName) {
		f.DriverName = s.DriverName
	}
}

// Record coerces the form into a ParkingEntry. ok is false when the
// shipment or the location is missing. Timestamps parse leniently: anything
// unreadable becomes "not recorded" and the stop simply has no duration.
func (f ParkingForm) Record() (model.ParkingEntry, bool) {
	if missing(f.ShipmentID) || missing(f.Location) {
		return model.ParkingEntry{}, false
	}

	place := model.PlaceType(f.PlaceType)
	if place == "" {
		place = model.PlaceOther
	}

	return model.ParkingEntry{
		ShipmentID: strings.TrimSpace(f.ShipmentID),
		DriverName: strings.TrimSpace(f.DriverName),
		RouteStage: parseInt(f.RouteStage),
		Location:   strings.TrimSpace(f.Location),
		PlaceType:  place,
		StartTime:  parseTime(f.Start),
		EndTime:    parseTime(f.End),
		Reason:     strings.TrimSpace(f.Reason),
		Amount:     parseAmount(f.Amount),
	}, true
}
