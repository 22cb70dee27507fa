package query

import (
	"strings"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ParkingFilter is a conjunction of equality predicates over parking stops.
type ParkingFilter struct {
	ShipmentID string
	PlaceType  string
}

// Matches reports whether the stop satisfies every constrained dimension.
func (f ParkingFilter) Matches(e model.ParkingEntry) bool {
	if f.ShipmentID != All && f.ShipmentID != e.ShipmentID {
		return false
	}
	if f.PlaceType != All && f.PlaceType != string(e.PlaceType) {
		return false
	}
	return true
}

// ParkingSort selects the parking view sort key.
type ParkingSort string

const (
	ParkingByStart    ParkingSort = "start"
	ParkingByAmount   ParkingSort = "amount"
	ParkingByDuration ParkingSort = "duration" // derived minutes, invalid intervals sort as 0
	ParkingByStage    ParkingSort = "stage"
	ParkingByShipment ParkingSort = "shipment"
)

// ParkingEntries returns the filtered, sorted view of a parking snapshot.
func ParkingEntries(records []model.ParkingEntry, filter ParkingFilter, key ParkingSort, dir Direction) []model.ParkingEntry {
	out := make([]model.ParkingEntry, 0, len(records))
	for _, e := range records {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}

	cmp := func(a, b model.ParkingEntry) int {
		switch key {
		case ParkingByAmount:
			return a.Amount.Cmp(b.Amount)
		case ParkingByDuration:
			return compareInt64(a.DurationMinutes(), b.DurationMinutes())
		case ParkingByStage:
			return compareInt64(int64(a.RouteStage), int64(b.RouteStage))
		case ParkingByShipment:
			return strings.Compare(a.ShipmentID, b.ShipmentID)
		default:
			return compareTime(a.StartTime, b.StartTime)
		}
	}
	return ordered(out, cmp, dir)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
