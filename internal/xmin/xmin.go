// Package xmin provides a generic Min, for the handful of places that need
// to clamp a value against another bound.
package xmin

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
