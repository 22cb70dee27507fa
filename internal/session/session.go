// Package session wires config, store, and the collection CSV files into
// one working set for a CLI invocation. The engine itself is purely
// in-memory; the session is the edge that loads it and writes it back.
package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/roadbook-dev/roadbook/internal/config"
	"github.com/roadbook-dev/roadbook/internal/export"
	"github.com/roadbook-dev/roadbook/internal/model"
	"github.com/roadbook-dev/roadbook/internal/store"
)

// ConfigFile is the seed/reference file name inside a data directory.
const ConfigFile = "roadbook.yaml"

// Collection data file names inside a data directory.
const (
	ExpensesFile = "expenses.csv"
	FuelFile     = "fuel.csv"
	ParkingFile  = "parking.csv"
)

// Session is one loaded working set: seed config plus the three collections.
type Session struct {
	Root     string
	Config   *config.Config
	Store    *store.Store
	advances []model.CashAdvance
}

// Open loads roadbook.yaml and any collection files present under root.
// Missing collection files mean empty collections, not an error.
func Open(root string) (*Session, error) {
	cfg, err := config.Load(filepath.Join(root, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	advances, err := cfg.CashAdvances()
	if err != nil {
		return nil, fmt.Errorf("loading advances: %w", err)
	}

	s := &Session{Root: root, Config: cfg, Store: store.New(), advances: advances}

	expenses, err := readFile(root, ExpensesFile, export.ReadExpenses)
	if err != nil {
		return nil, err
	}
	s.Store.LoadExpenses(expenses)

	fuel, err := readFile(root, FuelFile, export.ReadFuelEntries)
	if err != nil {
		return nil, err
	}
	s.Store.LoadFuelEntries(fuel)

	parking, err := readFile(root, ParkingFile, export.ReadParkingEntries)
	if err != nil {
		return nil, err
	}
	s.Store.LoadParkingEntries(parking)

	logrus.WithFields(logrus.Fields{
		"root":     root,
		"expenses": len(expenses),
		"fuel":     len(fuel),
		"parking":  len(parking),
	}).Debug("session opened")

	return s, nil
}

// Advances returns the seeded cash-advance table.
func (s *Session) Advances() []model.CashAdvance {
	return s.advances
}

// Save writes all three collections back to the data directory.
func (s *Session) Save() error {
	if err := writeFile(s.Root, ExpensesFile, s.Store.Expenses(), export.WriteExpenses); err != nil {
		return err
	}
	if err := writeFile(s.Root, FuelFile, s.Store.FuelEntries(), export.WriteFuelEntries); err != nil {
		return err
	}
	if err := writeFile(s.Root, ParkingFile, s.Store.ParkingEntries(), export.WriteParkingEntries); err != nil {
		return err
	}

	logrus.WithField("root", s.Root).Debug("session saved")
	return nil
}

func readFile[T any](root, name string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filepath.Join(root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return records, nil
}

func writeFile[T any](root, name string, records []T, write func(w io.Writer, records []T) error) error {
	f, err := os.Create(filepath.Join(root, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f, records); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
