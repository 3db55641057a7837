/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ponyo877/dush/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs [run_id]",
	Short: "Lists exported reports, or prints one.",
	Long: `Without an argument, lists every report saved in the database. With a
run ID, prints that report's per-directory entries.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString(databasePathKey)
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open database %s: %v\n", dbPath, err)
			return
		}
		defer st.Close()

		if len(args) == 1 {
			r, err := st.GetRun(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load run %s: %v\n", args[0], err)
				return
			}
			for _, e := range r.Entries {
				fmt.Printf("%10d %6d  %s\n", e.Total, e.Files, e.Path)
			}
			return
		}

		runs, err := st.ListRuns()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list runs: %v\n", err)
			return
		}
		if len(runs) == 0 {
			fmt.Println("No reports exported yet.")
			return
		}
		for _, run := range runs {
			fmt.Printf("%s  %s  %d entries\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Entries)
		}
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
