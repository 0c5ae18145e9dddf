package main

import (
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-ryb/pkg/imaging"
	"github.com/askiada/go-ryb/pkg/ryb"
)

var (
	recolorInvert  bool
	recolorTint    string
	recolorWeight  float64
	recolorChannel string
	recolorWorkers int
)

var errRecolorTransform = errors.New("choose exactly one of --invert, --tint or --channel")

var recolorCmd = &cobra.Command{
	Use:   "recolor <input> <output>",
	Short: "Recolor an image through the RYB model",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := buildTransform()
		if err != nil {
			return err
		}

		img, err := imaging.ReadFile(args[0])
		if err != nil {
			return err
		}

		out, stats, err := imaging.Recolor(cmd.Context(), img, fn, imaging.Workers(recolorWorkers))
		if err != nil {
			return err
		}

		err = imaging.WriteFile(args[1], out)
		if err != nil {
			return err
		}

		slog.Info("recolored image",
			"pixels", stats.Pixels,
			"rows", stats.Rows,
			"workers", stats.Workers,
			"elapsed", stats.Elapsed,
		)

		return nil
	},
}

func buildTransform() (imaging.Transform, error) {
	var fns []imaging.Transform

	if recolorInvert {
		fns = append(fns, imaging.Invert())
	}

	if recolorTint != "" {
		tint, err := ryb.Parse(recolorTint)
		if err != nil {
			return nil, err
		}

		fns = append(fns, imaging.Tint(tint, recolorWeight))
	}

	if recolorChannel != "" {
		idx, err := parseChannel(recolorChannel)
		if err != nil {
			return nil, err
		}

		fns = append(fns, imaging.Channel(idx))
	}

	if len(fns) != 1 {
		return nil, errRecolorTransform
	}

	return fns[0], nil
}

func parseChannel(value string) (imaging.ChannelIndex, error) {
	switch value {
	case "r", "red":
		return imaging.ChannelRed, nil
	case "y", "yellow":
		return imaging.ChannelYellow, nil
	case "b", "blue":
		return imaging.ChannelBlue, nil
	}

	return 0, errors.Errorf("unknown channel %q", value)
}

func init() {
	recolorCmd.Flags().BoolVar(&recolorInvert, "invert", false, "invert every pixel in RYB space")
	recolorCmd.Flags().StringVar(&recolorTint, "tint", "", "tint every pixel toward this color")
	recolorCmd.Flags().Float64Var(&recolorWeight, "weight", 0.5, "tint strength between 0 and 1")
	recolorCmd.Flags().StringVar(&recolorChannel, "channel", "", "keep a single RYB channel: r, y or b")
	recolorCmd.Flags().IntVar(&recolorWorkers, "workers", runtime.GOMAXPROCS(0), "rows processed concurrently")
	rootCmd.AddCommand(recolorCmd)
}
