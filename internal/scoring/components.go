package scoring

import (
	"fmt"
	"math"
)

// Per-component point caps. They sum to 100.
const (
	MaxConsistency = 30
	MaxAutonomy    = 25
	MaxGhostDays   = 20
	MaxVolume      = 15
	MaxStreak      = 10
)

// Component is one scored slice of the total: points capped at Max, plus the
// raw metric and a human-readable detail line for the breakdown view.
type Component struct {
	Name   string  `json:"name"`
	Points int     `json:"points"`
	Max    int     `json:"max_points"`
	Value  float64 `json:"value"`
	Detail string  `json:"detail"`
}

// clampedPoints rounds to the nearest integer and clamps into [0, max].
func clampedPoints(v float64, max int) int {
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	if p > max {
		return max
	}
	return p
}

// ScoreConsistency awards up to 30 points for the share of window days with
// any activity at all.
func ScoreConsistency(agg WindowAggregate) Component {
	frac := 0.0
	if agg.WindowSize > 0 {
		frac = float64(agg.ActiveDays) / float64(agg.WindowSize)
	}
	return Component{
		Name:   "Consistency",
		Points: clampedPoints(frac*MaxConsistency, MaxConsistency),
		Max:    MaxConsistency,
		Value:  float64(agg.ActiveDays),
		Detail: fmt.Sprintf("%d of %d days active", agg.ActiveDays, agg.WindowSize),
	}
}

// ScoreAutonomy awards up to 25 points for the ratio of agent-driven hours to
// user-driven hours, scaled at 12.5 points per 1.0x of ratio.
func ScoreAutonomy(agg WindowAggregate) Component {
	ratio := agg.AutonomyRatio()
	return Component{
		Name:   "Autonomy",
		Points: clampedPoints(ratio*12.5, MaxAutonomy),
		Max:    MaxAutonomy,
		Value:  ratio,
		Detail: fmt.Sprintf("%.1fh agent vs %.1fh user (%.2fx ratio)",
			agg.SecondaryHours, agg.PrimaryHours, ratio),
	}
}

// ScoreGhostDays awards up to 20 points for the share of active days that were
// fully autonomous: agent hours with zero user-driven hours.
func ScoreGhostDays(agg WindowAggregate) Component {
	pct := 0.0
	if agg.ActiveDays > 0 {
		pct = float64(agg.GhostDays) / float64(agg.ActiveDays)
	}
	return Component{
		Name:   "Ghost Days",
		Points: clampedPoints(pct*25, MaxGhostDays),
		Max:    MaxGhostDays,
		Value:  pct,
		Detail: fmt.Sprintf("%d of %d active days fully autonomous", agg.GhostDays, agg.ActiveDays),
	}
}

// ScoreVolume awards up to 15 points for cumulative hours in the window,
// topping out at 100 hours.
func ScoreVolume(agg WindowAggregate) Component {
	return Component{
		Name:   "Volume",
		Points: clampedPoints(agg.TotalHours/100*MaxVolume, MaxVolume),
		Max:    MaxVolume,
		Value:  agg.TotalHours,
		Detail: fmt.Sprintf("%.1fh total in the window", agg.TotalHours),
	}
}

// ScoreStreak awards up to 10 points for the consecutive-day streak, topping
// out at 30 days.
func ScoreStreak(streak int) Component {
	return Component{
		Name:   "Streak",
		Points: clampedPoints(float64(streak)/30*MaxStreak, MaxStreak),
		Max:    MaxStreak,
		Value:  float64(streak),
		Detail: fmt.Sprintf("%d consecutive active days", streak),
	}
}
