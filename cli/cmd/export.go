/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ponyo877/dush/report"
	"github.com/ponyo877/dush/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Saves a usage report to the database.",
	Long: `Builds a usage report over the session tree and saves it to the SQLite
database configured as database_path. Each export gets a fresh run ID.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString(databasePathKey)
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open database %s: %v\n", dbPath, err)
			return
		}
		defer st.Close()

		r := report.Build(tree)
		if err := st.SaveReport(r); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save report: %v\n", err)
			return
		}
		fmt.Printf("Exported report %s (%d entries) to %s\n", r.ID, len(r.Entries), dbPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
