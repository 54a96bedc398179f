package unitstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/specialistvlad/platformid/internal/platform"
)

// Entry is a resolved unit: its record and the record's content identifier.
type Entry struct {
	Unit   string
	Record platform.Record
	ID     string
}

// ResolveFunc produces the entry contents for a unit.
type ResolveFunc func() (platform.Record, string, error)

type cell struct {
	once  sync.Once
	ready chan struct{}
	entry Entry
	err   error
}

func newCell() *cell {
	return &cell{ready: make(chan struct{})}
}

func (c *cell) resolve(unit string, fn ResolveFunc) {
	c.once.Do(func() {
		defer close(c.ready)
		rec, id, err := fn()
		if err != nil {
			c.err = err
			return
		}
		c.entry = Entry{Unit: unit, Record: rec, ID: id}
	})
}

// Store is the in-memory unit guard. The zero value is not usable; call New.
type Store struct {
	cells sync.Map // Key: unit name, Value: *cell
}

// New creates a new, empty store.
func New() *Store {
	return &Store{}
}

// Once returns the entry of unit, calling fn only if the unit has not been
// resolved before. A failed resolution is remembered as well; the unit is not
// retried.
func (s *Store) Once(unit string, fn ResolveFunc) (Entry, error) {
	v, _ := s.cells.LoadOrStore(unit, newCell())
	c := v.(*cell)
	c.resolve(unit, fn)
	return c.entry, c.err
}

// Get returns the entry of a resolved unit. It reports an error if the unit is
// unknown, still resolving, or its resolution failed.
func (s *Store) Get(unit string) (Entry, error) {
	v, ok := s.cells.Load(unit)
	if !ok {
		return Entry{}, fmt.Errorf("unit %q has not been resolved", unit)
	}
	c := v.(*cell)
	select {
	case <-c.ready:
		return c.entry, c.err
	default:
		return Entry{}, fmt.Errorf("unit %q is still being resolved", unit)
	}
}

// Units returns the names of every unit seen so far, sorted.
func (s *Store) Units() []string {
	var units []string
	s.cells.Range(func(k, _ any) bool {
		units = append(units, k.(string))
		return true
	})
	slices.Sort(units)
	return units
}
