/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/ponyo877/dush/report"
	"github.com/spf13/cobra"
)

// duCmd represents the du command
var duCmd = &cobra.Command{
	Use:   "du",
	Short: "Prints per-directory size totals.",
	Long: `Builds a usage report over the session tree and prints one line per
directory: its recursive byte total, its file count and its path.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := report.Build(tree)
		for _, e := range r.Entries {
			fmt.Printf("%10d %6d  %s\n", e.Total, e.Files, e.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(duCmd)
}
