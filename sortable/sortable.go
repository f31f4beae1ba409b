// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-binsort/compare"
)

// Sortable is a type that can order itself against other values of the same type.
// LessThan must describe a strict weak ordering: irreflexive, transitive, and with
// incomparability (neither value less than the other) being transitive as well.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to a plain less function, which is what the
// sorting routines in this module consume.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
