package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadbook-dev/roadbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalances_RemainingIsAdvanceMinusExpenses(t *testing.T) {
	advances := []model.CashAdvance{{ShipmentID: "SHP-1", Advanced: dec("5000")}}
	expenses := []model.Expense{
		{ShipmentID: "SHP-1", Amount: dec("350")},
		{ShipmentID: "SHP-1", Amount: dec("150")},
	}

	b := Balance(advances, expenses, "SHP-1")
	assert.True(t, b.Spent.Equal(dec("500")))
	assert.True(t, b.Remaining.Equal(dec("4500")))
}

func TestBalances_UnrelatedShipmentIsIsolated(t *testing.T) {
	advances := []model.CashAdvance{
		{ShipmentID: "SHP-1", Advanced: dec("5000")},
		{ShipmentID: "SHP-2", Advanced: dec("3000")},
	}
	expenses := []model.Expense{{ShipmentID: "SHP-1", Amount: dec("500")}}

	before := Balance(advances, expenses, "SHP-1")

	// Mutating SHP-2's records leaves SHP-1's balance untouched.
	expenses = append(expenses, model.Expense{ShipmentID: "SHP-2", Amount: dec("999")})
	after := Balance(advances, expenses, "SHP-1")

	assert.True(t, before.Remaining.Equal(after.Remaining))
	assert.True(t, Balance(advances, expenses, "SHP-2").Remaining.Equal(dec("2001")))
}

func TestBalances_NoAdvanceYieldsNegativeRemaining(t *testing.T) {
	expenses := []model.Expense{{ShipmentID: "SHP-9", Amount: dec("250")}}

	b := Balance(nil, expenses, "SHP-9")
	assert.True(t, b.Advanced.IsZero())
	assert.True(t, b.Remaining.Equal(dec("-250")))
}

func TestBalances_FuelAndParkingDoNotReducePerShipmentRemaining(t *testing.T) {
	advances := []model.CashAdvance{{ShipmentID: "SHP-1", Advanced: dec("1000")}}

	// The per-shipment view nets expenses only, whatever fuel or parking
	// the shipment also recorded.
	b := Balance(advances, nil, "SHP-1")
	assert.True(t, b.Remaining.Equal(dec("1000")))
}

func TestSummarize_FoldsAllThreeCollections(t *testing.T) {
	advances := []model.CashAdvance{
		{ShipmentID: "SHP-1", Advanced: dec("5000")},
		{ShipmentID: "SHP-2", Advanced: dec("2000")}, // no transactions at all
	}
	expenses := []model.Expense{{ShipmentID: "SHP-1", Amount: dec("500")}}
	fuel := []model.FuelEntry{{ShipmentID: "SHP-1", Liters: dec("100"), PricePerLiter: dec("30")}}
	parking := []model.ParkingEntry{{ShipmentID: "SHP-1", Amount: dec("150")}}

	s := Summarize(advances, expenses, fuel, parking)
	assert.True(t, s.TotalAdvanced.Equal(dec("7000")))
	assert.True(t, s.FuelCost.Equal(dec("3000")))
	assert.True(t, s.TotalSpent.Equal(dec("3650")))
	assert.True(t, s.Remaining.Equal(dec("3350")))
}

func TestTotalExpenses_BucketsPartitionTotal(t *testing.T) {
	expenses := []model.Expense{
		{Category: model.CategoryToll, Amount: dec("120")},
		{Category: model.CategoryMeal, Amount: dec("45")},
		{Category: model.CategoryOvernight, Amount: dec("800")},
		{Category: model.CategoryOther, Amount: dec("60")},
		{Category: model.ExpenseCategory("customs"), Amount: dec("75")}, // unknown tag
	}

	tot := TotalExpenses(expenses)
	sum := tot.Tolls.Add(tot.Meals).Add(tot.Overnights).Add(tot.Other)
	assert.True(t, sum.Equal(tot.Total))
	assert.True(t, tot.Other.Equal(dec("135")), "other absorbs unknown categories")
}

func TestTotalExpenses_Empty(t *testing.T) {
	tot := TotalExpenses(nil)
	assert.True(t, tot.Total.IsZero())
	assert.True(t, tot.Tolls.Add(tot.Meals).Add(tot.Overnights).Add(tot.Other).Equal(tot.Total))
}

func TestReconcileCards_GroupsWithNoCardBucket(t *testing.T) {
	entries := []model.FuelEntry{
		{FleetCardID: "FC-7", Liters: dec("100"), PricePerLiter: dec("30")},
		{FleetCardID: "", Liters: dec("40"), PricePerLiter: dec("31")},
		{FleetCardID: "FC-7", Liters: dec("60"), PricePerLiter: dec("32")},
	}

	usage := ReconcileCards(entries)
	require.Len(t, usage, 2)

	assert.Equal(t, "FC-7", usage[0].CardID)
	assert.Equal(t, 2, usage[0].Fills)
	assert.True(t, usage[0].Liters.Equal(dec("160")))
	assert.True(t, usage[0].Cost.Equal(dec("4920")))

	assert.Equal(t, "", usage[1].CardID)
	assert.Equal(t, 1, usage[1].Fills)
}

func TestEfficiency_SingleQualifyingEntry(t *testing.T) {
	entries := []model.FuelEntry{{
		Liters:         dec("120"),
		PricePerLiter:  dec("32.50"),
		OdometerBefore: dec("45230"),
		OdometerAfter:  dec("45380"),
	}}

	assert.True(t, entries[0].Cost().Equal(dec("3900.00")))

	kmPerLiter, ok := Efficiency(entries)
	require.True(t, ok)
	assert.True(t, kmPerLiter.Equal(dec("1.25")))
}

func TestEfficiency_ExcludesBadOdometerReadings(t *testing.T) {
	qualifying := model.FuelEntry{Liters: dec("100"), OdometerBefore: dec("1000"), OdometerAfter: dec("1500")}
	disqualified := model.FuelEntry{Liters: dec("999"), OdometerBefore: dec("2000"), OdometerAfter: dec("1900")}

	kmPerLiter, ok := Efficiency([]model.FuelEntry{qualifying, disqualified})
	require.True(t, ok)
	assert.True(t, kmPerLiter.Equal(dec("5")), "only the qualifying entry contributes")
}

func TestEfficiency_UndefinedWhenNoQualifyingEntries(t *testing.T) {
	entries := []model.FuelEntry{
		{Liters: dec("50"), OdometerBefore: dec("100"), OdometerAfter: dec("100")},
	}

	_, ok := Efficiency(entries)
	assert.False(t, ok)
	assert.Equal(t, RatioPlaceholder, FormatRatio(decimal.Zero, false))
}

func TestAveragePrice(t *testing.T) {
	entries := []model.FuelEntry{
		{Liters: dec("100"), PricePerLiter: dec("30")},
		{Liters: dec("100"), PricePerLiter: dec("34")},
	}

	price, ok := AveragePrice(entries)
	require.True(t, ok)
	assert.True(t, price.Equal(dec("32")))

	_, ok = AveragePrice(nil)
	assert.False(t, ok)
}

func TestParkingByPlaceAndStage(t *testing.T) {
	start := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	entries := []model.ParkingEntry{
		{RouteStage: 2, PlaceType: model.PlaceRestArea, Amount: dec("50"), StartTime: start, EndTime: start.Add(8 * time.Hour)},
		{RouteStage: 1, PlaceType: model.PlaceWarehouse, Amount: dec("0"), StartTime: start, EndTime: start.Add(45 * time.Minute)},
		{RouteStage: 2, PlaceType: model.PlaceRestArea, Amount: dec("30")},
	}

	places := ParkingByPlace(entries)
	require.Len(t, places, 2)
	assert.Equal(t, model.PlaceRestArea, places[0].Place)
	assert.Equal(t, 2, places[0].Count)
	assert.True(t, places[0].TotalAmount.Equal(dec("80")))
	assert.Equal(t, int64(480), places[0].TotalMinutes, "entry without interval adds zero minutes")

	stages := ParkingByStage(entries)
	require.Len(t, stages, 2)
	assert.Equal(t, 1, stages[0].Stage)
	assert.Equal(t, 2, stages[1].Stage)
	assert.Equal(t, 2, stages[1].Count)
}

func TestSummarizeParking_PaidVersusFree(t *testing.T) {
	entries := []model.ParkingEntry{
		{Amount: dec("50")},
		{Amount: dec("0")},
		{Amount: dec("25")},
	}

	o := SummarizeParking(entries)
	assert.Equal(t, 3, o.Count)
	assert.Equal(t, 2, o.Paid)
	assert.Equal(t, 1, o.Free)
	assert.True(t, o.TotalAmount.Equal(dec("75")))
}
