package ryb

import "image/color"

// Color is a color expressed as red, yellow and blue components in the
// subtractive RYB model.
type Color[T Component] [3]T

// RGB is a color expressed as red, green and blue components in the additive
// RGB model. It is the interop type for conversions.
type RGB[T Component] [3]T

// The RYB primaries, secondaries and extremes. In a subtractive model white
// is the absence of paint and black is all primaries combined.
var (
	Black  = Color[float64]{1, 1, 1}
	Blue   = Color[float64]{0, 0, 1}
	Cyan   = Color[float64]{0, 0.5, 1}
	Green  = Color[float64]{0, 1, 1}
	Purple = Color[float64]{1, 0, 0.5}
	Red    = Color[float64]{1, 0, 0}
	White  = Color[float64]{0, 0, 0}
	Yellow = Color[float64]{0, 1, 0}
)

// New creates a new Color from an array of red, yellow and blue components.
func New[T Component](v [3]T) Color[T] {
	return Color[T](v)
}

// RGBA implements the standard library color.Color interface. The alpha
// channel is always fully opaque.
func (c Color[T]) RGBA() (r, g, b, a uint32) {
	rgb := c.RGB()

	const max = 0xffff

	r = uint32(toUnit(rgb[0])*max + 0.5)
	g = uint32(toUnit(rgb[1])*max + 0.5)
	b = uint32(toUnit(rgb[2])*max + 0.5)

	return r, g, b, max
}

// FromColor converts any standard library color to its RYB representation.
// The alpha channel is dropped.
func FromColor(c color.Color) Color[float64] {
	r, g, b, _ := c.RGBA()

	const max = 0xffff

	return FromRGB(RGB[float64]{float64(r) / max, float64(g) / max, float64(b) / max})
}

// Model converts any color.Color to a Color[float64], so RYB colors plug into
// the image/color machinery.
var Model color.Model = color.ModelFunc(rybModel)

func rybModel(c color.Color) color.Color {
	if ryb, ok := c.(Color[float64]); ok {
		return ryb
	}

	return FromColor(c)
}
