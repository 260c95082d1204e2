// Package caldate provides pure calendar-date values used across the ccpulse codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
//
// A Date is a plain (year, month, day) triple with no time-of-day and no timezone.
// All arithmetic is calendar arithmetic: stepping back one day from March 1 lands on
// February 28 (or 29), never on "24 hours earlier", so DST and UTC-offset shifts
// cannot produce off-by-one dates.
package caldate

import (
	"fmt"
	"time"
)

// Layout is the canonical wire format for dates.
const Layout = "2006-01-02"

// Date is a calendar date in the local calendar.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current date from the local calendar.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// MustParse parses a YYYY-MM-DD string and panics on failure. Test helper.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Add returns the date shifted by n calendar days (n may be negative).
// time.Date normalizes out-of-range day components, which rolls month and
// year boundaries correctly, including leap years.
func (d Date) Add(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}
}

// Prev returns the previous calendar day.
func (d Date) Prev() Date {
	return d.Add(-1)
}
