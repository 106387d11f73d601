package models

import "fmt"

// phoneLength is the number of digits a phone number must have.
const phoneLength = 10

// PhoneNumber represents a validated phone number of exactly 10 ASCII digits.
type PhoneNumber struct {
	value string
}

// IsValidPhone reports whether s has exactly 10 characters, all ASCII digits.
func IsValidPhone(s string) bool {
	if len(s) != phoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewPhoneNumber validates s and returns it as a PhoneNumber.
func NewPhoneNumber(s string) (PhoneNumber, error) {
	if !IsValidPhone(s) {
		return PhoneNumber{}, fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, s)
	}
	return PhoneNumber{value: s}, nil
}

// String returns the phone number digits.
func (p PhoneNumber) String() string {
	return p.value
}
