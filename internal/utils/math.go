// internal/utils/math.go
package utils

// ClampMin returns v, or min if v is below it.
func ClampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// Outside reports whether v lies outside [lo, hi].
func Outside(v, lo, hi float64) bool {
	return v < lo || v > hi
}
