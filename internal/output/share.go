package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotcommander/ccpulse/internal/scoring"
)

// ShareFormatter renders the compact share text: a two-line summary suitable
// for pasting into chat or social posts. No color, no box drawing.
type ShareFormatter struct {
	w io.Writer
}

// NewShareFormatter creates a new ShareFormatter writing to stdout.
func NewShareFormatter() *ShareFormatter {
	return &ShareFormatter{w: os.Stdout}
}

// Format prints the share text.
func (f *ShareFormatter) Format(report scoring.Report) error {
	fmt.Fprintln(f.w, ShareText(report))
	return nil
}

// ShareText builds the share summary for a report.
func ShareText(report scoring.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My ccpulse score: %d/100 (%s · %s)\n",
		report.Total, report.Tier, report.Label)
	fmt.Fprintf(&b, "%d/%d days active · %.2fx autonomy · %d-day streak",
		report.Window.ActiveDays, report.Window.WindowSize,
		report.Window.AutonomyRatio(), report.Streak)
	return b.String()
}
