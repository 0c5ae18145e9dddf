package ryb

import "math"

// Component is the set of channel types a Color can carry. Float components
// hold values in the unit range directly. Unsigned integer components are
// scaled by the maximum value of their type, so uint8 channels span 0..255.
type Component interface {
	float32 | float64 | uint8 | uint16 | uint32 | uint64 | uint
}

// toUnit converts a component to a float64 in the unit range.
func toUnit[T Component](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case uint8:
		return float64(x) / math.MaxUint8
	case uint16:
		return float64(x) / math.MaxUint16
	case uint32:
		return float64(x) / math.MaxUint32
	case uint64:
		return float64(x) / math.MaxUint64
	case uint:
		return float64(x) / math.MaxUint
	}

	return 0
}

// fromUnit converts a float64 in the unit range to the component type.
// Out-of-range values are clamped so integer components never wrap.
func fromUnit[T Component](x float64) T {
	x = clamp(x)

	var v T
	switch any(v).(type) {
	case float32, float64:
		return T(x)
	case uint8:
		return T(math.Round(x * math.MaxUint8))
	case uint16:
		return T(math.Round(x * math.MaxUint16))
	case uint32:
		return T(math.Round(x * math.MaxUint32))
	case uint64:
		// 2^64-1 is not exactly representable as a float64, so saturate
		// instead of converting out of range.
		if x == 1 {
			return any(uint64(math.MaxUint64)).(T)
		}

		return T(x * math.MaxUint64)
	case uint:
		if x == 1 {
			return any(uint(math.MaxUint)).(T)
		}

		return T(x * math.MaxUint)
	}

	return v
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}

	return x
}

func min3(a, b, c float64) float64 {
	return math.Min(math.Min(a, b), c)
}

func max3(a, b, c float64) float64 {
	return math.Max(math.Max(a, b), c)
}
