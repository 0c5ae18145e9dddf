package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askiada/go-ryb/pkg/ryb"
	"github.com/askiada/go-ryb/pkg/ryb/drawer"
)

var mixGraphFile string

var mixCmd = &cobra.Command{
	Use:   "mix <color[:weight]>...",
	Short: "Mix weighted colors the way paint mixes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := parseWeighted(args)
		if err != nil {
			return err
		}

		mixed, err := ryb.Mix(parts)
		if err != nil {
			return err
		}

		fmt.Printf("ryb(%.3f, %.3f, %.3f) %s\n", mixed[0], mixed[1], mixed[2], mixed.Hex())

		if mixGraphFile == "" {
			return nil
		}

		d := drawer.NewDOTDrawer(mixGraphFile)
		for i, part := range parts {
			err := d.AddSource(sourceName(args[i]), part.Color, part.Weight)
			if err != nil {
				return err
			}
		}

		err = d.SetResult(mixed)
		if err != nil {
			return err
		}

		return d.Draw()
	},
}

func init() {
	mixCmd.Flags().StringVar(&mixGraphFile, "graph", "", "write the mix recipe as a DOT graph to this file")
	rootCmd.AddCommand(mixCmd)
}
