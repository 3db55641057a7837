/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/ponyo877/dush/treemap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	// tree is the session tree every command operates on. Sizes are bytes.
	tree = treemap.New[int64]()
)

const (
	databasePathKey = "database_path"
	scanRootKey     = "scan_root"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dush",
	Short: "An in-memory directory tree with du-style size reports.",
	Long: `dush keeps a directory tree of named file sizes in memory and answers
du-style questions about it: per-directory totals, tree dumps, sums and
name searches. Build the tree by hand (mkdir/touch), import it from a
real directory (scan), and export reports to a SQLite database (export).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// one-shot
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	// REPL over the session tree
	fmt.Println("entering interactive mode, type 'exit' to quit")
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("dush> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		args, _ := shellwords.Parse(line)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
			return
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dush.yaml)")
	rootCmd.PersistentFlags().String("database", "", "Path of the SQLite database used by export")
	rootCmd.PersistentFlags().String("scan-root", "", "Default directory imported by scan")

	viper.BindPFlag(databasePathKey, rootCmd.PersistentFlags().Lookup("database"))
	viper.BindPFlag(scanRootKey, rootCmd.PersistentFlags().Lookup("scan-root"))
	viper.SetDefault(databasePathKey, "./dush.db")
	viper.SetDefault(scanRootKey, ".")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".dush" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dush")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}
