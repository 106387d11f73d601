package models

import (
	"fmt"
	"strings"
)

// phoneSeparator joins phone numbers when a record is rendered.
const phoneSeparator = "; "

// Name is the contact name. It is the key of a Record within an AddressBook.
type Name string

// String returns the name as plain text.
func (n Name) String() string { return string(n) }

// Record represents one contact in the address book.
// A Record does not know which address book, if any, holds it.
type Record struct {
	// name is not validated and never changes after NewRecord.
	name Name

	// phones keeps insertion order and holds no duplicate values.
	phones []PhoneNumber

	// birthday is the zero Birthday until the first successful AddBirthday.
	birthday Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) *Record {
	return &Record{name: Name(name)}
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// AddPhone validates number and appends it unless an identical number is
// already stored. It reports whether the number was appended.
func (r *Record) AddPhone(number string) (bool, error) {
	phone, err := NewPhoneNumber(number)
	if err != nil {
		return false, err
	}
	if r.indexOf(number) >= 0 {
		return false, nil
	}
	r.phones = append(r.phones, phone)
	return true, nil
}

// RemovePhone removes every phone equal to number and reports whether any was removed.
func (r *Record) RemovePhone(number string) bool {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(r.phones)
	clear(r.phones[len(kept):])
	r.phones = kept
	return removed
}

// EditPhone replaces the first phone equal to oldNumber with newNumber,
// keeping its position. newNumber is validated before anything else, so an
// invalid value leaves the record unchanged. It reports whether a phone was replaced.
func (r *Record) EditPhone(oldNumber, newNumber string) (bool, error) {
	phone, err := NewPhoneNumber(newNumber)
	if err != nil {
		return false, err
	}
	i := r.indexOf(oldNumber)
	if i < 0 {
		return false, nil
	}
	r.phones[i] = phone
	return true, nil
}

// FindPhone returns the stored value equal to number.
func (r *Record) FindPhone(number string) (string, bool) {
	i := r.indexOf(number)
	if i < 0 {
		return "", false
	}
	return r.phones[i].value, true
}

// Phones returns a copy of the stored phones in insertion order.
func (r *Record) Phones() []PhoneNumber {
	phones := make([]PhoneNumber, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// JoinedPhones returns all phones joined with "; " in insertion order.
func (r *Record) JoinedPhones() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return strings.Join(values, phoneSeparator)
}

// FirstPhone returns the first stored phone.
func (r *Record) FirstPhone() (PhoneNumber, bool) {
	if len(r.phones) == 0 {
		return PhoneNumber{}, false
	}
	return r.phones[0], true
}

// AddBirthday validates s and sets it as the birthday if none is set yet.
// The first birthday set sticks; it reports whether this call set it.
func (r *Record) AddBirthday(s string) (bool, error) {
	birthday, err := NewBirthday(s)
	if err != nil {
		return false, err
	}
	if !r.birthday.IsZero() {
		return false, nil
	}
	r.birthday = birthday
	return true, nil
}

// Birthday returns the birthday if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// String renders the record as
// "Contact name: {name}, phones: {phones}, birthday: {birthday}".
func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, r.JoinedPhones(), r.birthday)
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.value == number {
			return i
		}
	}
	return -1
}
