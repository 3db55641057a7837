/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ponyo877/dush/treemap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Imports file sizes from a real directory.",
	Long: `Walks a directory on disk and mirrors it into the session tree, each
file recorded with its on-disk size. With no argument the configured
scan_root is walked. Entries the tree already has are skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := viper.GetString(scanRootKey)
		if len(args) == 1 {
			root = args[0]
		}

		var files, skipped int
		var total int64
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if rel == "." {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				return tree.MakeDirectory(rel)
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			if err := tree.Insert(rel, info.Size()); err != nil {
				if errors.Is(err, treemap.ErrExists) {
					skipped++
					return nil
				}
				return err
			}
			files++
			total += info.Size()
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to scan %s: %v\n", root, err)
			return
		}
		fmt.Printf("Imported %d files (%d bytes) from %s", files, total, root)
		if skipped > 0 {
			fmt.Printf(", skipped %d existing", skipped)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
