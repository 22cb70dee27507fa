package session

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadbook-dev/roadbook/internal/config"
	"github.com/roadbook-dev/roadbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Company:   config.CompanyConfig{Name: "Acme Haulage"},
		Shipments: []config.ShipmentConfig{{ID: "SHP-1", Driver: "M. Kovacs", Plate: "ABC-123", FleetCard: "FC-7"}},
		Advances:  []config.AdvanceConfig{{ShipmentID: "SHP-1", Amount: "5000.00"}},
	}
	require.NoError(t, config.Save(filepath.Join(dir, ConfigFile), cfg))
	return dir
}

func TestOpen_EmptyDataDir(t *testing.T) {
	s, err := Open(newDataDir(t))
	require.NoError(t, err)

	assert.Empty(t, s.Store.Expenses())
	assert.Empty(t, s.Store.FuelEntries())
	assert.Empty(t, s.Store.ParkingEntries())

	advances := s.Advances()
	require.Len(t, advances, 1)
	assert.True(t, advances[0].Advanced.Equal(dec("5000")))
}

func TestOpen_MissingConfig(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
}

func TestSaveAndReopen_RoundTrip(t *testing.T) {
	dir := newDataDir(t)

	s, err := Open(dir)
	require.NoError(t, err)
	expID := s.Store.CreateExpense(model.Expense{ShipmentID: "SHP-1", Description: "Toll", Amount: dec("120")})
	s.Store.CreateFuelEntry(model.FuelEntry{ShipmentID: "SHP-1", StationName: "Shell", Liters: dec("120"), PricePerLiter: dec("32.50")})
	s.Store.CreateParkingEntry(model.ParkingEntry{ShipmentID: "SHP-1", Location: "Rest area km 112", Amount: dec("50")})
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)

	expenses := reopened.Store.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, expID, expenses[0].ID)
	assert.True(t, expenses[0].Amount.Equal(dec("120")))
	require.Len(t, reopened.Store.FuelEntries(), 1)
	require.Len(t, reopened.Store.ParkingEntries(), 1)
}

func TestReopen_ContinuesIDSequence(t *testing.T) {
	dir := newDataDir(t)

	s, err := Open(dir)
	require.NoError(t, err)
	first := s.Store.CreateExpense(model.Expense{ShipmentID: "SHP-1", Description: "A"})
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)
	second := reopened.Store.CreateExpense(model.Expense{ShipmentID: "SHP-1", Description: "B"})

	assert.Equal(t, "EXP-00001", first)
	assert.Equal(t, "EXP-00002", second)
}
