package models

import "errors"

var (
	// ErrInvalidPhoneFormat is returned when a phone number is not exactly 10 digits.
	ErrInvalidPhoneFormat = errors.New("invalid phone number format, must be 10 digits")

	// ErrInvalidBirthdayFormat is returned when a birthday is not a real DD.MM.YYYY date.
	ErrInvalidBirthdayFormat = errors.New("invalid birthday format, must be DD.MM.YYYY")
)
