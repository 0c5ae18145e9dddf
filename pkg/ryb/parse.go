package ryb

import (
	"math"

	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"
)

// Parse parses a color string in hex, rgb() or rgba() notation and returns
// its RYB representation.
func Parse(value string) (Color[float64], error) {
	parsed, err := colors.Parse(value)
	if err != nil {
		return Color[float64]{}, errors.Wrapf(err, "unable to parse color %q", value)
	}

	rgb := parsed.ToRGB()

	const max = math.MaxUint8

	return FromRGB(RGB[float64]{
		float64(rgb.R) / max,
		float64(rgb.G) / max,
		float64(rgb.B) / max,
	}), nil
}

// Hex renders the color as a lowercase hex string in the RGB model.
func (c Color[T]) Hex() string {
	rgb := c.RGB()

	hex, err := colors.RGB(
		uint8(math.Round(toUnit(rgb[0])*math.MaxUint8)),
		uint8(math.Round(toUnit(rgb[1])*math.MaxUint8)),
		uint8(math.Round(toUnit(rgb[2])*math.MaxUint8)),
	)
	if err != nil {
		return ""
	}

	return hex.ToHEX().String()
}
