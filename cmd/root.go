package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/ccpulse/internal/caldate"
	"github.com/dotcommander/ccpulse/internal/config"
	"github.com/dotcommander/ccpulse/internal/outputters"
	"github.com/dotcommander/ccpulse/internal/scoring"
	"github.com/dotcommander/ccpulse/internal/source"
)

var (
	inputPattern string
	outputFormat string
	outputFile   string
	sourceTool   string
	noColor      bool
	quiet        bool
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

// gradeTable is the static tier reference shown in help and by the grades
// subcommand.
const gradeTable = `  90-100  S  Cyborg
  75-89   A  Power User
  60-74   B  Growing
  45-59   C  Early Stage
  30-44   D  Getting Started
  0-29    F  Dormant`

var rootCmd = &cobra.Command{
	Use:   "ccpulse",
	Short: "Productivity score for agent-assisted work",
	Long: `ccpulse computes a composite productivity score (0-100) from your daily
usage hours over the last 30 days: five weighted components covering
consistency, autonomy, fully-autonomous "ghost" days, volume, and streak.

The per-day hours come from the cchours tool (or a log file via --input).
If cchours is not installed, ccpulse exits with an error rather than
reporting a zero score.

Grades:
` + gradeTable,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&inputPattern, "input", "i", "", "Read the usage log from files matching this glob instead of running the source tool")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for the report (console|json|share)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for the JSON report (requires --format json)")
	rootCmd.PersistentFlags().StringVar(&sourceTool, "source", "", "Name or path of the usage tool to run (default cchours)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print only the total score and tier")

	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	configPaths := []string{".ccpulserc.json", ".ccpulserc.yaml", ".ccpulserc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

// runScore fetches the log, evaluates the score for today, and renders it.
// formatOverride, when non-empty, wins over the configured format (used by
// the share subcommand).
func runScore(formatOverride string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if sourceTool != "" {
		cfg.Source = sourceTool
	}
	if noColor {
		cfg.Color = false
	}
	format := cfg.Format
	if formatOverride != "" {
		format = formatOverride
	}

	log, warnings, err := selectSource(cfg).Fetch()
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: skipped malformed record %s\n", w)
		}
	}

	report := scoring.Evaluate(log, caldate.Today(), cfg.Window)

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// selectSource picks the file source when an input pattern is set, otherwise
// the external tool.
func selectSource(cfg *config.Config) source.Source {
	if cfg.Input != "" {
		return source.NewFileSource(cfg.Input)
	}
	return source.NewCommandSource(cfg.Source)
}
