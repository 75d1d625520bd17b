// Package clock supplies the timestamps reported in emitted sentences,
// either live from the system clock or replayed from a fixed operator
// supplied specification.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Source yields the timestamp for the next sentence.
type Source interface {
	Now() time.Time
}

// System reads the live system clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed replays the same time-of-day on every call. Without a fixed date the
// date portion follows the current calendar day, so a downstream clock still
// sees today's date alongside the frozen time.
type Fixed struct {
	tod     time.Time
	date    time.Time
	hasDate bool
}

func (f Fixed) Now() time.Time {
	d := f.date
	if !f.hasDate {
		d = time.Now().UTC()
	}
	return time.Date(d.Year(), d.Month(), d.Day(),
		f.tod.Hour(), f.tod.Minute(), f.tod.Second(), 0, time.UTC)
}

// Parse interprets a time specification. Accepted forms:
//
//	now                  live system clock
//	HH:MM:SS             fixed time-of-day, date tracks the current day
//	HH:MM:SS DD/MM/YY    fixed time-of-day and date
//
// Anything else is a configuration error.
func Parse(spec string) (Source, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "now" {
		return System{}, nil
	}
	if t, err := time.Parse("15:04:05 02/01/06", spec); err == nil {
		return Fixed{tod: t, date: t, hasDate: true}, nil
	}
	if t, err := time.Parse("15:04:05", spec); err == nil {
		return Fixed{tod: t}, nil
	}
	return nil, fmt.Errorf("unrecognised time spec %q (want \"now\", \"HH:MM:SS\" or \"HH:MM:SS DD/MM/YY\")", spec)
}
