/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <path...>",
	Short: "Removes files or directories.",
	Long: `Removes one or more files or directories from the session tree.
Removing a directory removes its whole subtree.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			if _, err := tree.GetNode(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to remove %s: %v\n", path, err)
				continue
			}
			if err := tree.Remove(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to remove %s: %v\n", path, err)
				continue
			}
			fmt.Printf("Removed: %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
