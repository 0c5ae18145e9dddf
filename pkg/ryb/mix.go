package ryb

import "github.com/pkg/errors"

var (
	ErrMixEmpty      = errors.New("mix needs at least one color")
	ErrMixWeight     = errors.New("total weight must be greater than 0")
	ErrGradientSteps = errors.New("steps must be greater than 1")
)

// Weighted pairs a color with its share of a mix.
type Weighted[T Component] struct {
	Color  Color[T]
	Weight float64
}

// Mix combines a collection of weighted colors into a single color. The
// result is the weighted average of the components in RYB space, which
// behaves like mixing paint: equal parts of blue and yellow give green.
// Weights are normalised over their sum, so only their ratios matter.
func Mix[T Component](parts []Weighted[T]) (Color[T], error) {
	if len(parts) == 0 {
		return Color[T]{}, ErrMixEmpty
	}

	var total float64

	var acc [3]float64

	for _, part := range parts {
		if part.Weight < 0 {
			return Color[T]{}, errors.Wrapf(ErrMixWeight, "weight %v", part.Weight)
		}

		total += part.Weight
		for i := range acc {
			acc[i] += part.Weight * toUnit(part.Color[i])
		}
	}

	if total <= 0 {
		return Color[T]{}, ErrMixWeight
	}

	return Color[T]{
		fromUnit[T](acc[0] / total),
		fromUnit[T](acc[1] / total),
		fromUnit[T](acc[2] / total),
	}, nil
}

// Lerp interpolates between two colors in RYB space. The parameter t is
// clamped to the unit range: 0 returns from and 1 returns to.
func Lerp[T Component](from, to Color[T], t float64) Color[T] {
	t = clamp(t)

	var out Color[T]
	for i := range out {
		a := toUnit(from[i])
		b := toUnit(to[i])
		out[i] = fromUnit[T](a + (b-a)*t)
	}

	return out
}

// Gradient returns a gradient of the given number of steps between two
// colors, endpoints included.
func Gradient[T Component](from, to Color[T], steps int) ([]Color[T], error) {
	if steps < 2 {
		return nil, errors.Wrapf(ErrGradientSteps, "got %d", steps)
	}

	out := make([]Color[T], steps)
	for i := range out {
		out[i] = Lerp(from, to, float64(i)/float64(steps-1))
	}

	return out, nil
}
