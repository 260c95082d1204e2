package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a compact share text for the current score",
	Long: `Computes the productivity score and prints a short plain-text summary
with the total, tier, active days, autonomy ratio, and streak, suitable
for pasting into chat or social posts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore("share"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
