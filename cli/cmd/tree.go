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

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Prints the tree.",
	Long: `Prints the session tree (or the subtree at the given path), one node
per line, indented by depth. Files show their size after the name.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		node := tree.Root()
		if len(args) == 1 {
			var err error
			node, err = tree.GetNode(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to resolve %s: %v\n", args[0], err)
				return
			}
		}
		treemap.Print(os.Stdout, node)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
