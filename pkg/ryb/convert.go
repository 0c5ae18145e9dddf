package ryb

import "math"

// FromRGB converts an additive RGB color to its RYB representation.
//
// The conversion strips the achromatic part of the color first: the whiteness
// (the smallest channel) is removed, the chromatic remainder is projected onto
// the RYB axes and rescaled so the strongest channel keeps its magnitude, and
// the blackness of the original color is added back on every channel.
func FromRGB[T Component](c RGB[T]) Color[T] {
	r0, g0, b0 := toUnit(c[0]), toUnit(c[1]), toUnit(c[2])

	// remove whiteness
	w := min3(r0, g0, b0)
	r, g, b := r0-w, g0-w, b0-w

	// project onto the RYB axes
	rp := r - math.Min(r, g)
	yp := (g + math.Min(r, g)) / 2
	bp := (b + g - math.Min(r, g)) / 2

	// rescale so the strongest RYB channel matches the strongest RGB
	// channel; achromatic colors have no chromatic part to rescale
	if n := max3(rp, yp, bp) / max3(r, g, b); n > 0 {
		rp /= n
		yp /= n
		bp /= n
	}

	// add blackness back
	k := min3(1-r0, 1-g0, 1-b0)

	return Color[T]{fromUnit[T](rp + k), fromUnit[T](yp + k), fromUnit[T](bp + k)}
}

// RGB converts the color back to the additive RGB representation. The
// rescaling step makes the conversion only approximately invertible: the
// primaries, green, purple and all achromatic colors round trip exactly,
// other colors may drift slightly.
func (c Color[T]) RGB() RGB[T] {
	r0, y0, b0 := toUnit(c[0]), toUnit(c[1]), toUnit(c[2])

	// remove whiteness
	w := min3(r0, y0, b0)
	r, y, b := r0-w, y0-w, b0-w

	// project back onto the RGB axes
	rp := r + y - math.Min(y, b)
	gp := y + 2*math.Min(y, b)
	bp := 2 * (b - math.Min(y, b))

	// rescale so the strongest RGB channel matches the strongest RYB
	// channel
	if n := max3(rp, gp, bp) / max3(r, y, b); n > 0 {
		rp /= n
		gp /= n
		bp /= n
	}

	// add blackness back
	k := min3(1-r0, 1-y0, 1-b0)

	return RGB[T]{fromUnit[T](rp + k), fromUnit[T](gp + k), fromUnit[T](bp + k)}
}
