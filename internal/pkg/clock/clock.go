// Package clock provides the injectable "now" used by attendance policy
// decisions and the time-of-day type department policy windows are
// expressed in.
package clock

import (
	"fmt"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// New returns a Clock reading the system time in loc. A nil loc means
// time.Local.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TimeOfDay is a wall-clock time without a date, with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseHHMM accepts the "15:04" form used by department policy input.
func ParseHHMM(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ParseTimeOfDay accepts "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// FromDuration converts an offset since midnight, as stored in a TIME column.
func FromDuration(d time.Duration) TimeOfDay {
	secs := int(d / time.Second)
	return TimeOfDay{Hour: secs / 3600, Minute: secs % 3600 / 60, Second: secs % 60}
}

func (t TimeOfDay) SinceMidnight() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute + time.Duration(t.Second)*time.Second
}

// On combines the calendar date of day with t, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, t.Second, 0, day.Location())
}

// HHMM formats as "15:04".
func (t TimeOfDay) HHMM() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// String formats as "15:04:05".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// DisplayLayout renders timestamps in API responses, e.g.
// "17 October 2026, 08:15:00".
const DisplayLayout = "02 January 2006, 15:04:05"
