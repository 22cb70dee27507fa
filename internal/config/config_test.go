package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roadbook.yaml")

	cfg := &Config{
		Company: CompanyConfig{Name: "Acme Haulage"},
		Shipments: []ShipmentConfig{
			{ID: "SHP-1", Number: "SHP-2025-014", Driver: "M. Kovacs", Plate: "ABC-123", Vehicle: "T-07", FleetCard: "FC-7"},
		},
		Advances: []AdvanceConfig{
			{ShipmentID: "SHP-1", Amount: "5000.00"},
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Haulage", loaded.Company.Name)
	require.Len(t, loaded.Shipments, 1)
	assert.Equal(t, "FC-7", loaded.Shipments[0].FleetCard)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestShipmentLookup(t *testing.T) {
	cfg := &Config{Shipments: []ShipmentConfig{{ID: "SHP-1", Driver: "M. Kovacs"}}}

	s, ok := cfg.Shipment("SHP-1")
	require.True(t, ok)
	assert.Equal(t, "M. Kovacs", s.DriverName)

	_, ok = cfg.Shipment("SHP-404")
	assert.False(t, ok)
}

func TestCashAdvances(t *testing.T) {
	cfg := &Config{Advances: []AdvanceConfig{
		{ShipmentID: "SHP-1", Amount: "5000.00"},
		{ShipmentID: "SHP-2", Amount: "2500"},
	}}

	advances, err := cfg.CashAdvances()
	require.NoError(t, err)
	require.Len(t, advances, 2)
	assert.Equal(t, "5000", advances[0].Advanced.String())

	cfg.Advances[0].Amount = "not-money"
	_, err = cfg.CashAdvances()
	require.Error(t, err)
}
