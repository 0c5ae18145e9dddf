package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rybtool",
	Short: "rybtool works with colors in the red-yellow-blue subtractive model",
	Long:  "rybtool converts colors between RGB and RYB, mixes weighted colors the way paint mixes, and recolors images",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rybtool: run 'rybtool --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
