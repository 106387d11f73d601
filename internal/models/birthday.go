package models

import (
	"fmt"
	"time"
)

// BirthdayLayout is the layout birthdays are parsed with and rendered in.
// Day and month may have one or two digits on input; the year has four.
const (
	BirthdayLayout       = "2.1.2006"
	birthdayRenderLayout = "02.01.2006"
)

// Birthday represents a validated calendar date.
type Birthday struct {
	date time.Time
	set  bool
}

// IsValidBirthday reports whether s is a real calendar date in DD.MM.YYYY form.
func IsValidBirthday(s string) bool {
	_, ok := parseBirthday(s)
	return ok
}

// NewBirthday parses s as a DD.MM.YYYY date.
// Month lengths and leap years are checked by time.Parse.
func NewBirthday(s string) (Birthday, error) {
	date, ok := parseBirthday(s)
	if !ok {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthdayFormat, s)
	}
	return Birthday{date: date, set: true}, nil
}

// parseBirthday rejects year 0000, which time.Parse would accept.
func parseBirthday(s string) (time.Time, bool) {
	date, err := time.Parse(BirthdayLayout, s)
	if err != nil || date.Year() < 1 {
		return time.Time{}, false
	}
	return date, true
}

// Year returns the birth year.
func (b Birthday) Year() int { return b.date.Year() }

// Month returns the birth month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month.
func (b Birthday) Day() int { return b.date.Day() }

// IsZero reports whether b was never set.
// 01.01.0001 is a valid birthday even though it is the zero time.Time.
func (b Birthday) IsZero() bool { return !b.set }

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(birthdayRenderLayout)
}
