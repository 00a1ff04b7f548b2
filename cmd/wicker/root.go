package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wicker",
	Short: "Wicker is a dual-dialect HTML template rendering engine",
	Long:  `Wicker renders markup fragments containing brace-style and tag-style directives against a data context, from the command line or as an HTTP service.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the templates")
}
