package contributions

import (
	"errors"
	"fmt"
	"time"
)

var (
	// a date string is not a valid YYYY-MM-DD calendar day
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// a range has end before start
	ErrInvalidRange = errors.New("invalid range: end date before start date")
)

// parses a YYYY-MM-DD calendar day, timezone-naive
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return day, nil
}

// validates an inclusive [start, end] range before any storage call.
// Equal dates denote a single-day range.
func ValidateRange(start, end string) error {
	startDay, err := ParseDay(start)
	if err != nil {
		return err
	}

	endDay, err := ParseDay(end)
	if err != nil {
		return err
	}

	if endDay.Before(startDay) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidRange, start, end)
	}

	return nil
}

// materializes every calendar day in [start, end] inclusive, ascending.
// Callers must have validated the range first.
func DaysBetween(start, end string) []string {
	startDay, err := ParseDay(start)
	if err != nil {
		return nil
	}

	endDay, err := ParseDay(end)
	if err != nil {
		return nil
	}

	var days []string

	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(time.DateOnly))
	}

	return days
}
