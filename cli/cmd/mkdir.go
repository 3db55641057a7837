/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// mkdirCmd represents the mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path...>",
	Short: "Creates directories.",
	Long: `Creates one or more directories in the session tree. Every segment of
the path is created if missing; repeating an existing path is a no-op.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			if err := tree.MakeDirectory(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create directory %s: %v\n", path, err)
				continue
			}
			fmt.Printf("Directory created: %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
