package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifeadvance/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(orUTC(loc))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days in loc, keeping the wall clock time.
// Going through time.Date keeps DST transitions from shifting the day.
func AddDays(t time.Time, n int, loc *time.Location) time.Time {
	t = t.In(orUTC(loc))
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}

// DayKey returns the YYYY-MM-DD form of t's calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(orUTC(loc)).Format(constants.DateFormat)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, orUTC(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}
