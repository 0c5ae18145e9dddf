package imaging

import "github.com/askiada/go-ryb/pkg/ryb"

// ChannelIndex selects one of the three RYB channels.
type ChannelIndex int

const (
	ChannelRed ChannelIndex = iota
	ChannelYellow
	ChannelBlue
)

// Invert returns the subtractive complement of every pixel.
func Invert() Transform {
	return func(c ryb.Color[float64]) ryb.Color[float64] {
		return ryb.Color[float64]{1 - c[0], 1 - c[1], 1 - c[2]}
	}
}

// Tint pulls every pixel toward the given color. A weight of 0 leaves the
// image untouched, a weight of 1 replaces it entirely.
func Tint(tint ryb.Color[float64], weight float64) Transform {
	return func(c ryb.Color[float64]) ryb.Color[float64] {
		return ryb.Lerp(c, tint, weight)
	}
}

// Channel keeps a single RYB channel and zeroes the other two.
func Channel(idx ChannelIndex) Transform {
	return func(c ryb.Color[float64]) ryb.Color[float64] {
		var out ryb.Color[float64]
		if idx >= ChannelRed && idx <= ChannelBlue {
			out[idx] = c[idx]
		}

		return out
	}
}
