// Package scoring computes the composite productivity score: window aggregation,
// streak detection, the five component scorers, and the grade lookup. Every
// function here is a pure transform of its inputs; "today" is always passed in
// explicitly so runs are reproducible with fixed dates.
package scoring

import (
	"github.com/dotcommander/ccpulse/internal/caldate"
	"github.com/dotcommander/ccpulse/internal/usagelog"
)

// DefaultWindow is the trailing window, in calendar days, over which all
// aggregate components except Streak are computed.
const DefaultWindow = 30

// WindowAggregate holds the statistics gathered in one walk over the trailing
// window {today, today-1, ..., today-(W-1)}.
type WindowAggregate struct {
	ActiveDays     int     `json:"active_days"`
	GhostDays      int     `json:"ghost_days"`
	WindowSize     int     `json:"window_size"`
	PrimaryHours   float64 `json:"primary_hours"`
	SecondaryHours float64 `json:"secondary_hours"`
	TotalHours     float64 `json:"total_hours"`
}

// Aggregate walks the window backward from today, inclusive, looking up each
// date in the log. A missing date counts as zero activity. The walk uses
// calendar-day decrements, so month and year boundaries roll over correctly.
func Aggregate(log usagelog.Log, today caldate.Date, window int) WindowAggregate {
	agg := WindowAggregate{WindowSize: window}
	d := today
	for i := 0; i < window; i++ {
		rec := log[d.String()]
		if rec.Active() {
			agg.ActiveDays++
			if rec.Ghost() {
				agg.GhostDays++
			}
		}
		agg.PrimaryHours += rec.PrimaryHours
		agg.SecondaryHours += rec.SecondaryHours
		agg.TotalHours += rec.TotalHours()
		d = d.Prev()
	}
	return agg
}

// AutonomyRatio is agent hours divided by user hours over the window. With no
// user hours the ratio is 2 when agent hours exist (full autonomy) and 0
// otherwise, so the formula stays total.
func (a WindowAggregate) AutonomyRatio() float64 {
	switch {
	case a.PrimaryHours > 0:
		return a.SecondaryHours / a.PrimaryHours
	case a.SecondaryHours > 0:
		return 2
	default:
		return 0
	}
}

// StreakLength counts consecutive active days walking backward from today.
// If today has no record at all the anchor falls back to yesterday; "today"
// often has not been populated yet. A record that exists but sums to zero
// breaks the streak the same as a missing one.
func StreakLength(log usagelog.Log, today caldate.Date) int {
	d := today
	if _, ok := log[d.String()]; !ok {
		d = d.Prev()
	}
	streak := 0
	for {
		rec, ok := log[d.String()]
		if !ok || !rec.Active() {
			return streak
		}
		streak++
		d = d.Prev()
	}
}
