package utils

// FindIndex returns the index of the first occurrence of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// WithinBounds reports whether every coordinate lies in [lower, upper) of its dimension.
func WithinBounds(coords, lower, upper []int) bool {
	if len(coords) != len(lower) || len(lower) != len(upper) {
		panic("coordinate and bound dimensions differ")
	}
	for i, c := range coords {
		if c < lower[i] || c >= upper[i] {
			return false
		}
	}
	return true
}
