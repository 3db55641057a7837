/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ponyo877/dush/treemap"
	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "Lists directory contents.",
	Long: `Lists the children of a directory in the session tree. Directories show
their recursive size total, files their own size. With no path the root
directory is listed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var entries []*treemap.Node[int64]
		if len(args) == 0 {
			entries = tree.Root().Children()
		} else {
			var err error
			entries, err = tree.GetChildren(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to list %s: %v\n", args[0], err)
				return
			}
		}

		if len(entries) == 0 {
			fmt.Println("Directory is empty.")
			return
		}

		for _, entry := range entries {
			if size, ok := entry.Value(); ok {
				fmt.Printf("%-4s %10d  %s\n", "FILE", size, entry.Name())
			} else {
				fmt.Printf("%-4s %10d  %s\n", "DIR", treemap.SumValues(entry), entry.Name())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
