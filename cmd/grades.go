package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Print the grade table",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Grade ranges (total score 0-100):")
		fmt.Println(gradeTable)
	},
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}
