package calculator

import (
	"fmt"
	"strings"
	"time"
)

// rolloverDays is the window, in days, under which a birthday is moved to next year.
const rolloverDays = 7

// BirthdayEntry represents a contact with the minimal information needed for birthday scheduling.
type BirthdayEntry struct {
	Name  string
	Month time.Month
	Day   int
}

// WeekdayGroup represents the contacts whose birthday falls on one weekday.
type WeekdayGroup struct {
	Weekday time.Weekday
	Names   []string
}

// Options tunes UpcomingBirthdays.
type Options struct {
	// WeekendsToMonday merges Saturday and Sunday birthdays into the Monday group.
	WeekendsToMonday bool
}

// UpcomingBirthdays groups entries by the weekday their next birthday falls on.
//
// Algorithm:
// - Anchor the birthday's month and day to today's year
// - If that date is less than 7 days from today (including dates already passed), use next year instead
// - Group names by the weekday of that date
//
// Groups are ordered by first encounter, names keep the order of entries.
// The time of day and location of today are ignored.
func UpcomingBirthdays(entries []BirthdayEntry, today time.Time, opts Options) []WeekdayGroup {
	today = dateOnly(today)

	var groups []WeekdayGroup
	index := make(map[time.Weekday]int)

	for _, entry := range entries {
		candidate := anniversary(entry, today.Year())
		delta := daysBetween(today, candidate)
		if delta < rolloverDays {
			candidate = anniversary(entry, today.Year()+1)
			delta = daysBetween(today, candidate)
		}

		weekday := today.AddDate(0, 0, delta).Weekday()
		if opts.WeekendsToMonday && (weekday == time.Saturday || weekday == time.Sunday) {
			weekday = time.Monday
		}

		i, exists := index[weekday]
		if !exists {
			i = len(groups)
			index[weekday] = i
			groups = append(groups, WeekdayGroup{Weekday: weekday})
		}
		groups[i].Names = append(groups[i].Names, entry.Name)
	}

	return groups
}

// FormatReport renders one "[ok] - {weekday}: {names}" line per group.
// It returns an empty string when there are no groups.
func FormatReport(groups []WeekdayGroup) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("[ok] - %s: %s", g.Weekday, strings.Join(g.Names, ", ")))
	}
	return strings.Join(lines, "\n")
}

// anniversary returns the entry's birthday in the given year.
// 29 February falls on 1 March in non-leap years.
func anniversary(entry BirthdayEntry, year int) time.Time {
	return time.Date(year, entry.Month, entry.Day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
