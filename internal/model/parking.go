package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceType classifies where a parking/rest stop happened.
type PlaceType string

const (
	PlaceRestArea   PlaceType = "rest-area"
	PlaceGasStation PlaceType = "gas-station"
	PlaceWarehouse  PlaceType = "warehouse"
	PlaceOther      PlaceType = "other"
)

// DurationPlaceholder is rendered for intervals that are absent or invalid.
const DurationPlaceholder = "—"

// ParkingEntry is one parking or rest stop recorded against a shipment.
type ParkingEntry struct {
	ID         string
	ShipmentID string
	DriverName string
	RouteStage int // ordinal leg of the journey, 1-based
	Location   string
	PlaceType  PlaceType
	StartTime  time.Time // zero = not recorded
	EndTime    time.Time // zero = not recorded
	Reason     string
	Amount     decimal.Decimal // zero = free parking
}

// HasDuration reports whether both timestamps are present and end is after
// start. An entry without a valid interval contributes zero minutes.
func (p ParkingEntry) HasDuration() bool {
	return !p.StartTime.IsZero() && !p.EndTime.IsZero() && p.EndTime.After(p.StartTime)
}

// DurationMinutes returns the stop length in whole minutes, rounded to
// nearest. Absent or inverted intervals yield 0, never a negative value.
func (p ParkingEntry) DurationMinutes() int64 {
	if !p.HasDuration() {
		return 0
	}
	return int64(math.Round(p.EndTime.Sub(p.StartTime).Minutes()))
}

// IsPaid reports whether the stop cost anything.
func (p ParkingEntry) IsPaid() bool {
	return p.Amount.IsPositive()
}

// FormatDuration renders the stop length as "3h 25m" or "45m".
// Entries without a valid interval render as the placeholder.
func (p ParkingEntry) FormatDuration() string {
	if !p.HasDuration() {
		return DurationPlaceholder
	}
	return FormatMinutes(p.DurationMinutes())
}

// FormatMinutes renders a minute count as "{hours}h {minutes}m" when at
// least an hour, else "{minutes}m".
func FormatMinutes(minutes int64) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
