// Package storage provides abstractions for address book storage.
package storage

import (
	"github.com/mmynk/addressbook/internal/models"
)

// Store defines the interface for address book operations.
// Records are keyed by name; lookups are exact string matches.
type Store interface {
	// AddRecord stores the record under its name.
	// An existing record with the same name is replaced, not merged.
	AddRecord(record *models.Record)

	// Find returns the record stored under name.
	// A miss is reported with false, never with an error.
	Find(name string) (*models.Record, bool)

	// Delete removes the record stored under name and reports whether one was removed.
	Delete(name string) bool

	// All returns every record in insertion order of the live keys.
	// A replaced record keeps the position of the record it replaced.
	All() []*models.Record

	// Len returns the number of stored records.
	Len() int
}
