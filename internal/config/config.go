package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// Config represents the top-level roadbook.yaml configuration: company
// identity, the read-only shipment reference list, and the cash-advance
// seed table. Advances have no runtime mutation API; editing the file is
// the only way to change them.
type Config struct {
	Company   CompanyConfig    `yaml:"company"`
	Shipments []ShipmentConfig `yaml:"shipments,omitempty"`
	Advances  []AdvanceConfig  `yaml:"advances,omitempty"`
}

// CompanyConfig identifies the operating company.
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// ShipmentConfig is one entry in the shipment reference list.
type ShipmentConfig struct {
	ID        string `yaml:"id"`
	Number    string `yaml:"number"`
	Driver    string `yaml:"driver"`
	Plate     string `yaml:"plate"`
	Vehicle   string `yaml:"vehicle"`
	FleetCard string `yaml:"fleet_card,omitempty"`
}

// AdvanceConfig grants a cash advance to one shipment. Amount is a decimal
// string so the file never carries float rounding noise.
type AdvanceConfig struct {
	ShipmentID string `yaml:"shipment_id"`
	Amount     string `yaml:"amount"`
}

// Load reads a roadbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new data directory.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{Name: companyName},
	}
}

// Shipment looks up a reference shipment by ID.
func (c *Config) Shipment(shipmentID string) (model.Shipment, bool) {
	for _, s := range c.Shipments {
		if s.ID == shipmentID {
			return model.Shipment{
				ID:          s.ID,
				Number:      s.Number,
				DriverName:  s.Driver,
				PlateNumber: s.Plate,
				VehicleNo:   s.Vehicle,
				FleetCardID: s.FleetCard,
			}, true
		}
	}
	return model.Shipment{}, false
}

// CashAdvances parses the advance seed table into model records, in file
// order.
func (c *Config) CashAdvances() ([]model.CashAdvance, error) {
	var out []model.CashAdvance
	for _, a := range c.Advances {
		amount, err := decimal.NewFromString(a.Amount)
		if err != nil {
			return nil, fmt.Errorf("parsing advance for %s: %w", a.ShipmentID, err)
		}
		out = append(out, model.CashAdvance{ShipmentID: a.ShipmentID, Advanced: amount})
	}
	return out, nil
}
