package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-ryb/pkg/ryb"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print the RYB components of a color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ryb.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ryb(%.3f, %.3f, %.3f) %s\n", c[0], c[1], c[2], c.Hex())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
