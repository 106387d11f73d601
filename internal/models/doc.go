// Package models defines the core domain models for the address book.
//
// # Models
//
//   - Name: the contact's name, also the key of a Record inside an AddressBook
//   - PhoneNumber: a validated 10-digit phone number
//   - Birthday: a validated DD.MM.YYYY calendar date
//   - Record: one contact with its phones and optional birthday
//
// # Validation
//
// PhoneNumber and Birthday can only be built through their constructors, which
// fail with ErrInvalidPhoneFormat or ErrInvalidBirthdayFormat. Callers check
// them with errors.Is.
//
// # No-op outcomes
//
// Operations that may legitimately do nothing (adding a duplicate phone,
// editing or removing a phone that is not stored, setting a birthday twice)
// report it with a boolean instead of an error, so callers can tell
// "nothing happened" apart from a validation failure.
package models
