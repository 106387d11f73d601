package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/addressbook/internal/calculator"
	"github.com/mmynk/addressbook/internal/models"
	"github.com/mmynk/addressbook/internal/storage"
)

// ErrContactNotFound is returned when no contact has the requested name.
var ErrContactNotFound = errors.New("contact not found")

// AddressBookService implements the operations behind the assistant's commands.
type AddressBookService struct {
	store storage.Store
	now   func() time.Time
	opts  calculator.Options
}

// Option configures an AddressBookService.
type Option func(*AddressBookService)

// WithClock sets the function used to read the current date.
func WithClock(now func() time.Time) Option {
	return func(s *AddressBookService) { s.now = now }
}

// WithWeekendsToMonday reports weekend birthdays under Monday.
func WithWeekendsToMonday(enabled bool) Option {
	return func(s *AddressBookService) { s.opts.WeekendsToMonday = enabled }
}

// NewAddressBookService creates a new AddressBookService with the given storage backend.
func NewAddressBookService(store storage.Store, opts ...Option) *AddressBookService {
	s := &AddressBookService{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddContact adds phone to the contact called name, creating the contact if needed.
// A new contact is only stored once the phone is valid.
// It reports whether the phone was added; false means the contact already had it.
func (s *AddressBookService) AddContact(name, phone string) (bool, error) {
	slog.Info("AddContact request received", "name", name)

	record, exists := s.store.Find(name)
	if !exists {
		record = models.NewRecord(name)
	}

	added, err := record.AddPhone(phone)
	if err != nil {
		slog.Warn("AddContact failed", "name", name, "error", err)
		return false, err
	}
	if !exists {
		s.store.AddRecord(record)
	}

	slog.Info("Contact saved", "name", name, "created", !exists, "phone_added", added)
	return added, nil
}

// ChangePhone replaces the first phone of the contact called name with phone.
// It reports false when the contact has no phone to replace.
func (s *AddressBookService) ChangePhone(name, phone string) (bool, error) {
	slog.Info("ChangePhone request received", "name", name)

	record, ok := s.store.Find(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}

	old, ok := record.FirstPhone()
	if !ok {
		// an invalid number is an error even with nothing to replace
		if _, err := models.NewPhoneNumber(phone); err != nil {
			return false, err
		}
		slog.Info("ChangePhone skipped, contact has no phone", "name", name)
		return false, nil
	}

	changed, err := record.EditPhone(old.String(), phone)
	if err != nil {
		slog.Warn("ChangePhone failed", "name", name, "error", err)
		return false, err
	}

	slog.Info("Phone changed", "name", name)
	return changed, nil
}

// Phone returns the first phone of the contact called name.
func (s *AddressBookService) Phone(name string) (models.PhoneNumber, bool, error) {
	record, ok := s.store.Find(name)
	if !ok {
		return models.PhoneNumber{}, false, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	phone, ok := record.FirstPhone()
	return phone, ok, nil
}

// RemovePhone removes phone from the contact called name.
// It reports whether the contact had that phone.
func (s *AddressBookService) RemovePhone(name, phone string) (bool, error) {
	slog.Info("RemovePhone request received", "name", name)

	record, ok := s.store.Find(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}

	removed := record.RemovePhone(phone)
	slog.Info("RemovePhone done", "name", name, "removed", removed)
	return removed, nil
}

// Contacts returns every contact in insertion order.
func (s *AddressBookService) Contacts() []*models.Record {
	return s.store.All()
}

// DeleteContact removes the contact called name.
func (s *AddressBookService) DeleteContact(name string) error {
	slog.Info("DeleteContact request received", "name", name)

	if !s.store.Delete(name) {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}

	slog.Info("Contact deleted", "name", name)
	return nil
}

// AddBirthday sets the birthday of the contact called name, creating the contact if needed.
// A birthday already set is kept; the result reports whether this call set it.
func (s *AddressBookService) AddBirthday(name, birthday string) (bool, error) {
	slog.Info("AddBirthday request received", "name", name)

	record, exists := s.store.Find(name)
	if !exists {
		record = models.NewRecord(name)
	}

	set, err := record.AddBirthday(birthday)
	if err != nil {
		slog.Warn("AddBirthday failed", "name", name, "error", err)
		return false, err
	}
	if !exists {
		s.store.AddRecord(record)
	}

	slog.Info("Birthday saved", "name", name, "created", !exists, "birthday_set", set)
	return set, nil
}

// Birthday returns the birthday of the contact called name.
func (s *AddressBookService) Birthday(name string) (models.Birthday, bool, error) {
	record, ok := s.store.Find(name)
	if !ok {
		return models.Birthday{}, false, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	birthday, ok := record.Birthday()
	return birthday, ok, nil
}

// BirthdaysPerWeek groups the contacts with a birthday by the weekday it falls on.
// Contacts without a birthday are skipped.
func (s *AddressBookService) BirthdaysPerWeek() []calculator.WeekdayGroup {
	today := s.now()
	slog.Info("BirthdaysPerWeek request received", "today", today.Format(time.DateOnly))

	// Convert to calculator format
	var entries []calculator.BirthdayEntry
	for _, record := range s.store.All() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		entries = append(entries, calculator.BirthdayEntry{
			Name:  record.Name().String(),
			Month: birthday.Month(),
			Day:   birthday.Day(),
		})
	}

	groups := calculator.UpcomingBirthdays(entries, today, s.opts)

	slog.Info("BirthdaysPerWeek successful",
		"entries_count", len(entries),
		"groups_count", len(groups),
	)
	return groups
}

// BirthdayReport renders BirthdaysPerWeek. It is empty when no contact has a birthday.
func (s *AddressBookService) BirthdayReport() string {
	return calculator.FormatReport(s.BirthdaysPerWeek())
}
