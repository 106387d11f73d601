// Package memory provides an in-memory implementation of the storage.Store interface.
package memory

import (
	"slices"
	"sync"

	"github.com/mmynk/addressbook/internal/models"
	"github.com/mmynk/addressbook/internal/storage"
)

// Ensure AddressBook implements storage.Store
var _ storage.Store = (*AddressBook)(nil)

// AddressBook implements storage.Store with a map index over an ordered slice.
// The mutex makes each operation atomic; All returns a snapshot, so a caller
// iterating it never observes a concurrent mutation.
type AddressBook struct {
	mu      sync.Mutex
	index   map[models.Name]int
	records []*models.Record
}

// New creates an AddressBook holding the given records.
// Later records replace earlier ones with the same name.
func New(records ...*models.Record) *AddressBook {
	b := &AddressBook{index: make(map[models.Name]int, len(records))}
	for _, r := range records {
		b.AddRecord(r)
	}
	return b
}

// AddRecord stores record under its name, replacing any record with that name.
func (b *AddressBook) AddRecord(record *models.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.index == nil {
		b.index = make(map[models.Name]int)
	}
	if i, ok := b.index[record.Name()]; ok {
		b.records[i] = record
		return
	}
	b.index[record.Name()] = len(b.records)
	b.records = append(b.records, record)
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*models.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.index[models.Name(name)]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.index[models.Name(name)]
	if !ok {
		return false
	}
	delete(b.index, models.Name(name))
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
	return true
}

// All returns a snapshot of the records in insertion order.
func (b *AddressBook) All() []*models.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.records)
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}
