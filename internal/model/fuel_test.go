package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFuelEntry_Cost(t *testing.T) {
	f := FuelEntry{Liters: dec("120"), PricePerLiter: dec("32.50")}
	assert.True(t, f.Cost().Equal(dec("3900.00")))
}

func TestFuelEntry_CountsForEfficiency(t *testing.T) {
	tests := []struct {
		name  string
		entry FuelEntry
		want  bool
	}{
		{"forward odometer", FuelEntry{Liters: dec("100"), OdometerBefore: dec("45230"), OdometerAfter: dec("45380")}, true},
		{"backward odometer", FuelEntry{Liters: dec("100"), OdometerBefore: dec("45380"), OdometerAfter: dec("45230")}, false},
		{"unchanged odometer", FuelEntry{Liters: dec("100"), OdometerBefore: dec("45230"), OdometerAfter: dec("45230")}, false},
		{"zero liters", FuelEntry{OdometerBefore: dec("45230"), OdometerAfter: dec("45380")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.CountsForEfficiency())
		})
	}
}
