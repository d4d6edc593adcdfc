package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It carries no date and no timezone; all shift times are facility-local.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses an "HH:MM" string into a TimeOfDay.
// It returns an error for anything that is not a well-formed,
// in-range wall-clock time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q is not in HH:MM form", ErrInvalidTime, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad hours in %q", ErrInvalidTime, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidTime, s)
	}

	if hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: hours out of range in %q", ErrInvalidTime, s)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTime, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// MustTimeOfDay parses an "HH:MM" string and panics on failure.
// Intended for fixtures and hardcoded defaults only.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String formats the time back to "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Overlaps reports whether the intervals [aStart, aEnd) and [bStart, bEnd)
// strictly overlap. Intervals that only touch at an endpoint (one shift
// ending at 09:00, another starting at 09:00) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// Contains reports whether t falls inside the half-open interval [start, end).
func Contains(start, end, t TimeOfDay) bool {
	return t >= start && t < end
}

// DurationHours returns the span between start and end in fractional hours.
// Shift validation rejects end <= start, so callers never see a
// non-positive duration from a validated shift.
func DurationHours(start, end TimeOfDay) float64 {
	return float64(end-start) / 60.0
}

// RestMinutes returns the number of minutes between a shift ending at
// prevEnd on one day and a shift starting at nextStart on the following
// calendar day.
func RestMinutes(prevEnd, nextStart TimeOfDay) int {
	return (minutesPerDay - prevEnd.Minutes()) + nextStart.Minutes()
}

// dateLayout is the calendar-date format used throughout the engine.
const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// AddDays shifts a "YYYY-MM-DD" date string by the given number of days.
// Invalid dates are returned unchanged; they will simply never match any
// shift in the snapshot.
func AddDays(date string, days int) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format(dateLayout)
}
