package scoring

import (
	"github.com/dotcommander/ccpulse/internal/caldate"
	"github.com/dotcommander/ccpulse/internal/usagelog"
)

// Report is the terminal artifact of one scoring run, consumed by the output
// formatters. Created once per run and never mutated afterwards.
type Report struct {
	Total       int             `json:"total"`
	Tier        string          `json:"tier"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Components  []Component     `json:"components"`
	Window      WindowAggregate `json:"window"`
	Streak      int             `json:"streak"`
}

// Evaluate runs the full pipeline: aggregate the trailing window, detect the
// streak, score the five components, sum, and grade. Each component is capped
// at its own max, so the total is naturally within [0, 100].
func Evaluate(log usagelog.Log, today caldate.Date, window int) Report {
	agg := Aggregate(log, today, window)
	streak := StreakLength(log, today)

	components := []Component{
		ScoreConsistency(agg),
		ScoreAutonomy(agg),
		ScoreGhostDays(agg),
		ScoreVolume(agg),
		ScoreStreak(streak),
	}

	total := 0
	for _, c := range components {
		total += c.Points
	}
	grade := GradeFromScore(total)

	return Report{
		Total:       total,
		Tier:        grade.Tier,
		Label:       grade.Label,
		Description: grade.Description,
		Components:  components,
		Window:      agg,
		Streak:      streak,
	}
}
