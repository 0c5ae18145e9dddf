package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-ryb/pkg/ryb"
)

var gradientSteps int

var gradientCmd = &cobra.Command{
	Use:   "gradient <from> <to>",
	Short: "Print a gradient between two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := ryb.Parse(args[0])
		if err != nil {
			return err
		}

		to, err := ryb.Parse(args[1])
		if err != nil {
			return err
		}

		steps, err := ryb.Gradient(from, to, gradientSteps)
		if err != nil {
			return err
		}

		for _, c := range steps {
			fmt.Println(c.Hex())
		}

		return nil
	},
}

func init() {
	gradientCmd.Flags().IntVar(&gradientSteps, "steps", 8, "number of colors in the gradient, endpoints included")
	rootCmd.AddCommand(gradientCmd)
}
