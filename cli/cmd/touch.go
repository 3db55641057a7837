/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// touchCmd represents the touch command
var touchCmd = &cobra.Command{
	Use:   "touch <path...>",
	Short: "Creates files with a recorded size.",
	Long: `Creates one or more files in the session tree, each recording the size
given with --size. Parent directories must already exist unless
--parents is set. A name the terminal directory already has is rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt64("size")
		parents, _ := cmd.Flags().GetBool("parents")

		for _, path := range args {
			var err error
			if parents {
				err = tree.InsertWithParents(path, size)
			} else {
				err = tree.Insert(path, size)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to touch %s: %v\n", path, err)
				continue
			}
			fmt.Printf("File created: %s (%d bytes)\n", path, size)
		}
	},
}

func init() {
	rootCmd.AddCommand(touchCmd)

	touchCmd.Flags().Int64("size", 0, "Size recorded for the new files")
	touchCmd.Flags().BoolP("parents", "p", false, "Create missing parent directories")
}
