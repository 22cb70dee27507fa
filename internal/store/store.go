// Package store owns the three transactional collections of the ledger:
// general expenses, fuel fills, and parking/rest stops. All reads hand out
// fresh snapshots; the query and report packages never see live state.
package store

import (
	"fmt"

	"github.com/roadbook-dev/roadbook/internal/id"
	"github.com/roadbook-dev/roadbook/internal/model"
)

// NotFoundError reports an update or delete against an unknown record ID.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s record %q not found", e.Collection, e.ID)
}

// collection holds one insertion-ordered record list. The sequence counter
// lives here, not in a global, so concurrent instances can never collide.
type collection[T any] struct {
	name    string
	prefix  string
	records []T
	nextSeq int
	idOf    func(T) string
	withID  func(T, string) T
}

func newCollection[T any](name, prefix string, idOf func(T) string, withID func(T, string) T) *collection[T] {
	return &collection[T]{name: name, prefix: prefix, nextSeq: 1, idOf: idOf, withID: withID}
}

// create assigns the next identifier and appends the record.
func (c *collection[T]) create(rec T) string {
	recID := id.FormatRecordID(c.prefix, c.nextSeq)
	c.nextSeq++
	c.records = append(c.records, c.withID(rec, recID))
	return recID
}

// update replaces the full record at the given ID, preserving the ID.
func (c *collection[T]) update(recID string, rec T) error {
	for i := range c.records {
		if c.idOf(c.records[i]) == recID {
			c.records[i] = c.withID(rec, recID)
			return nil
		}
	}
	return NotFoundError{Collection: c.name, ID: recID}
}

func (c *collection[T]) delete(recID string) error {
	for i := range c.records {
		if c.idOf(c.records[i]) == recID {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Collection: c.name, ID: recID}
}

// list returns a snapshot in insertion order.
func (c *collection[T]) list() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// load replaces the collection contents and reseeds the sequence counter
// past the highest suffix found, so reloaded sessions keep allocating
// unique identifiers.
func (c *collection[T]) load(records []T) {
	c.records = make([]T, len(records))
	copy(c.records, records)

	maxSeq := 0
	for _, rec := range records {
		_, seq, err := id.ParseRecordID(c.idOf(rec))
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	c.nextSeq = maxSeq + 1
}

// Store is the in-memory working set for one session.
type Store struct {
	expenses *collection[model.Expense]
	fuel     *collection[model.FuelEntry]
	parking  *collection[model.ParkingEntry]
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		expenses: newCollection("expense", id.PrefixExpense,
			func(e model.Expense) string { return e.ID },
			func(e model.Expense, recID string) model.Expense { e.ID = recID; return e }),
		fuel: newCollection("fuel", id.PrefixFuel,
			func(f model.FuelEntry) string { return f.ID },
			func(f model.FuelEntry, recID string) model.FuelEntry { f.ID = recID; return f }),
		parking: newCollection("parking", id.PrefixParking,
			func(p model.ParkingEntry) string { return p.ID },
			func(p model.ParkingEntry, recID string) model.ParkingEntry { p.ID = recID; return p }),
	}
}

// CreateExpense appends an expense and returns its assigned ID.
func (s *Store) CreateExpense(e model.Expense) string { return s.expenses.create(e) }

// UpdateExpense replaces the expense with the given ID.
func (s *Store) UpdateExpense(recID string, e model.Expense) error {
	return s.expenses.update(recID, e)
}

// DeleteExpense removes the expense with the given ID.
func (s *Store) DeleteExpense(recID string) error { return s.expenses.delete(recID) }

// Expenses returns an insertion-ordered snapshot.
func (s *Store) Expenses() []model.Expense { return s.expenses.list() }

// LoadExpenses replaces the expense collection, reseeding the ID sequence.
func (s *Store) LoadExpenses(records []model.Expense) { s.expenses.load(records) }

// CreateFuelEntry appends a fuel fill and returns its assigned ID.
func (s *Store) CreateFuelEntry(f model.FuelEntry) string { return s.fuel.create(f) }

// UpdateFuelEntry replaces the fuel fill with the given ID.
func (s *Store) UpdateFuelEntry(recID string, f model.FuelEntry) error {
	return s.fuel.update(recID, f)
}

// DeleteFuelEntry removes the fuel fill with the given ID.
func (s *Store) DeleteFuelEntry(recID string) error { return s.fuel.delete(recID) }

// FuelEntries returns an insertion-ordered snapshot.
func (s *Store) FuelEntries() []model.FuelEntry { return s.fuel.list() }

// LoadFuelEntries replaces the fuel collection, reseeding the ID sequence.
func (s *Store) LoadFuelEntries(records []model.FuelEntry) { s.fuel.load(records) }

// CreateParkingEntry appends a parking stop and returns its assigned ID.
func (s *Store) CreateParkingEntry(p model.ParkingEntry) string { return s.parking.create(p) }

// UpdateParkingEntry replaces the parking stop with the given ID.
func (s *Store) UpdateParkingEntry(recID string, p model.ParkingEntry) error {
	return s.parking.update(recID, p)
}

// DeleteParkingEntry removes the parking stop with the given ID.
func (s *Store) DeleteParkingEntry(recID string) error { return s.parking.delete(recID) }

// ParkingEntries returns an insertion-ordered snapshot.
func (s *Store) ParkingEntries() []model.ParkingEntry { return s.parking.list() }

// LoadParkingEntries replaces the parking collection, reseeding the ID sequence.
func (s *Store) LoadParkingEntries(records []model.ParkingEntry) { s.parking.load(records) }
