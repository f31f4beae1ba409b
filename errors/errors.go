// Package errors holds the sentinel errors shared by the packages that check
// sort results, plus a small helper for accumulating several of them.
package errors

import "errors"

var (
	// ErrNotSorted means an adjacent pair of output elements is out of order.
	ErrNotSorted = errors.New("output is not sorted")

	// ErrNotPermutation means the output does not hold the same multiset of elements as the input.
	ErrNotPermutation = errors.New("output is not a permutation of the input")

	// ErrNotStable means two equal elements swapped their relative order.
	ErrNotStable = errors.New("sort is not stable")

	// ErrMismatch means the output differs from a reference sort of the same input.
	ErrMismatch = errors.New("output differs from reference sort")

	// ErrInvalidConfig is returned for configuration values that parse but make no sense.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
