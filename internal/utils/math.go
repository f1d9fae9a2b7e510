// internal/utils/math.go
package utils

// Clamp ограничивает значение отрезком [min, max].
// Если min > max, возвращается min.
func Clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
