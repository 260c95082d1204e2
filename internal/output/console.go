package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/ccpulse/internal/scoring"
)

// ConsoleFormatter renders the score breakdown for terminal display.
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to stdout.
func NewConsoleFormatter(quiet, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        os.Stdout,
		quiet:    quiet,
		colorize: colorize,
	}
}

// printStyles holds all the styles used in the breakdown report.
type printStyles struct {
	header lipgloss.Style
	total  lipgloss.Style
	dim    lipgloss.Style
}

// newPrintStyles creates a new set of print styles.
func newPrintStyles(colorize bool, tier string) printStyles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return printStyles{header: plain, total: plain, dim: plain}
	}
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		total:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tierColor(tier))),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// tierColor maps a grade tier to an ANSI palette color.
func tierColor(tier string) string {
	switch tier {
	case "S", "A":
		return "10" // green
	case "B":
		return "12" // blue
	case "C":
		return "3" // yellow
	default:
		return "9" // red
	}
}

// Format renders the full breakdown view. In quiet mode only the total is
// printed, one machine-friendly line.
func (f *ConsoleFormatter) Format(report scoring.Report) error {
	if f.quiet {
		fmt.Fprintf(f.w, "%d %s\n", report.Total, report.Tier)
		return nil
	}

	styles := newPrintStyles(f.colorize, report.Tier)

	fmt.Fprintln(f.w)
	fmt.Fprintln(f.w, styles.header.Render("╔═══════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.w, styles.header.Render("║                 CCPULSE PRODUCTIVITY SCORE                ║"))
	fmt.Fprintln(f.w, styles.header.Render("╚═══════════════════════════════════════════════════════════╝"))
	fmt.Fprintln(f.w)

	fmt.Fprintf(f.w, "  %s  %s\n",
		styles.total.Render(fmt.Sprintf("%d/100", report.Total)),
		styles.total.Render(fmt.Sprintf("%s · %s", report.Tier, report.Label)))
	fmt.Fprintf(f.w, "  %s\n", styles.dim.Render(report.Description))
	fmt.Fprintln(f.w)

	for _, c := range report.Components {
		fmt.Fprintf(f.w, "  %-12s %s  %5s  %s\n",
			c.Name,
			f.renderBar(c.Points, c.Max, tierColor(report.Tier)),
			fmt.Sprintf("%d/%d", c.Points, c.Max),
			styles.dim.Render(c.Detail))
	}
	fmt.Fprintln(f.w)

	return nil
}

// renderBar draws a 10-cell block bar, filled proportionally to points/max.
// Any nonzero score shows at least one filled cell.
func (f *ConsoleFormatter) renderBar(points, max int, color string) string {
	barWidth := 10
	filled := 0
	if max > 0 {
		filled = (points * barWidth) / max
	}
	if points > 0 && filled == 0 {
		filled = 1
	}

	style := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if f.colorize {
		style = style.Foreground(lipgloss.Color(color))
		dimStyle = dimStyle.Foreground(lipgloss.Color("8"))
	}

	bar := ""
	for i := 0; i < filled; i++ {
		bar += style.Render("█")
	}
	for i := filled; i < barWidth; i++ {
		bar += dimStyle.Render("░")
	}
	return bar
}
