package main

import (
	"fmt"

	"github.com/aretw0/wicker"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wicker",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wicker version %s\n", wicker.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
