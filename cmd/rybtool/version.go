package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rybtool %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
