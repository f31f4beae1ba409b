// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equivalent reports whether a and b are equal under the ordering defined by less,
// meaning neither one is less than the other. Sorting uses this notion of equality:
// two records with the same sort key are equivalent even when their other fields differ.
func Equivalent[T any](less func(a, b T) bool, a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// Compare turns a less function into a three-way comparison.
// It returns -1 if a < b, +1 if b < a and 0 if a and b are equivalent.
func Compare[T any](less func(a, b T) bool, a, b T) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	default:
		return 0
	}
}
