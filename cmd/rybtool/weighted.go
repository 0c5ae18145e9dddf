package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-ryb/pkg/ryb"
)

// parseWeighted parses color[:weight] arguments. A missing weight counts
// as one part.
func parseWeighted(args []string) ([]ryb.Weighted[float64], error) {
	parts := make([]ryb.Weighted[float64], 0, len(args))

	for _, arg := range args {
		value := arg
		weight := 1.0

		if idx := strings.LastIndex(arg, ":"); idx >= 0 {
			parsed, err := strconv.ParseFloat(arg[idx+1:], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to parse weight in %q", arg)
			}

			value = arg[:idx]
			weight = parsed
		}

		c, err := ryb.Parse(value)
		if err != nil {
			return nil, err
		}

		parts = append(parts, ryb.Weighted[float64]{Color: c, Weight: weight})
	}

	return parts, nil
}

// sourceName strips the weight suffix from a color[:weight] argument.
func sourceName(arg string) string {
	if idx := strings.LastIndex(arg, ":"); idx >= 0 {
		return arg[:idx]
	}

	return arg
}
