/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ponyo877/dush/treemap"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Searches files by name substring or exact size.",
	Long: `Searches every file in the session tree. --name matches a substring of
the file name, --size an exact size; giving both requires both to match.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		size, _ := cmd.Flags().GetInt64("size")
		bySize := cmd.Flags().Changed("size")
		if name == "" && !bySize {
			fmt.Fprintln(os.Stderr, "Nothing to search for: give --name and/or --size.")
			return
		}

		match := func(fileName string, fileSize int64) bool {
			if name != "" && !strings.Contains(fileName, name) {
				return false
			}
			if bySize && fileSize != size {
				return false
			}
			return true
		}

		if !tree.Any(match) {
			fmt.Println("No matches.")
			return
		}
		matches := treemap.Reduce(tree.Root(), []string(nil), func(acc []string, fileName string, fileSize int64) []string {
			if match(fileName, fileSize) {
				acc = append(acc, fmt.Sprintf("%s (%d bytes)", fileName, fileSize))
			}
			return acc
		})
		for _, m := range matches {
			fmt.Println(m)
		}
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().String("name", "", "Substring of the file name to match")
	findCmd.Flags().Int64("size", 0, "Exact file size to match")
}
