package utils

// RoundInt rounds a non-negative float64 to the nearest integer.
func RoundInt(value float64) int {
	return int(value + 0.5)
}

// Clamp bounds value to the [lo, hi] interval.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Clamp01 bounds value to the unit interval.
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}
