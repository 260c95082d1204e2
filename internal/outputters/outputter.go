package outputters

import (
	"fmt"

	"github.com/dotcommander/ccpulse/internal/config"
	"github.com/dotcommander/ccpulse/internal/output"
	"github.com/dotcommander/ccpulse/internal/scoring"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format renders the score report using the requested format.
func (o *Outputter) Format(report scoring.Report, format string) error {
	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Color)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.Format(report)
	case "share":
		formatter := output.NewShareFormatter()
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
