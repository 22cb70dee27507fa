package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// PlaceGroup summarizes parking stops at one kind of place.
type PlaceGroup struct {
	Place        model.PlaceType
	Count        int
	TotalAmount  decimal.Decimal
	TotalMinutes int64
}

// StageGroup summarizes parking stops on one leg of the route.
type StageGroup struct {
	Stage        int
	Count        int
	TotalAmount  decimal.Decimal
	TotalMinutes int64
}

// ParkingOverview classifies the whole collection into paid and free stops.
type ParkingOverview struct {
	Count        int
	Paid         int
	Free         int
	TotalAmount  decimal.Decimal
	TotalMinutes int64
}

// ParkingByPlace groups stops by place type, in first-seen order.
func ParkingByPlace(entries []model.ParkingEntry) []PlaceGroup {
	groups := make(map[model.PlaceType]*PlaceGroup)
	var order []model.PlaceType
	for _, e := range entries {
		g, seen := groups[e.PlaceType]
		if !seen {
			g = &PlaceGroup{Place: e.PlaceType}
			groups[e.PlaceType] = g
			order = append(order, e.PlaceType)
		}
		g.Count++
		g.TotalAmount = g.TotalAmount.Add(e.Amount)
		g.TotalMinutes += e.DurationMinutes()
	}

	out := make([]PlaceGroup, 0, len(order))
	for _, place := range order {
		out = append(out, *groups[place])
	}
	return out
}

// ParkingByStage groups stops by route stage, ascending by stage number.
func ParkingByStage(entries []model.ParkingEntry) []StageGroup {
	groups := make(map[int]*StageGroup)
	for _, e := range entries {
		g, seen := groups[e.RouteStage]
		if !seen {
			g = &StageGroup{Stage: e.RouteStage}
			groups[e.RouteStage] = g
		}
		g.Count++
		g.TotalAmount = g.TotalAmount.Add(e.Amount)
		g.TotalMinutes += e.DurationMinutes()
	}

	out := make([]StageGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stage < out[j].Stage })
	return out
}

// SummarizeParking computes the paid/free overview of the collection.
func SummarizeParking(entries []model.ParkingEntry) ParkingOverview {
	var o ParkingOverview
	for _, e := range entries {
		o.Count++
		if e.IsPaid() {
			o.Paid++
		} else {
			o.Free++
		}
		o.TotalAmount = o.TotalAmount.Add(e.Amount)
		o.TotalMinutes += e.DurationMinutes()
	}
	return o
}
