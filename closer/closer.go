// Package closer collects cleanup steps so they can be run together, once,
// from whichever exit path gets there first.
package closer

import (
	"errors"
	"io"
	"sync"
)

type funcCloser func() error

func (f funcCloser) Close() error {
	return f()
}

// Func turns a cleanup function into an io.Closer. A nil function gives a nil closer.
func Func(f func() error) io.Closer {
	if f == nil {
		return nil
	}

	return funcCloser(f)
}

// Quiet is Func for cleanup that cannot fail.
func Quiet(f func()) io.Closer {
	if f == nil {
		return nil
	}

	return funcCloser(func() error {
		f()

		return nil
	})
}

// Closer runs a set of closers in reverse order of registration, so later
// resources (which may depend on earlier ones) are released first.
// It is safe for concurrent use, and Close only has an effect the first time.
type Closer struct {
	mut     sync.Mutex
	closers []io.Closer
	closed  bool
	err     error
}

// New returns a Closer holding the given closers.
func New(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add registers c. Nil closers are ignored. Adding to a closed Closer closes c immediately.
func (c *Closer) Add(cl io.Closer) error {
	if cl == nil {
		return nil
	}

	c.mut.Lock()
	if c.closed {
		c.mut.Unlock()

		return cl.Close()
	}

	c.closers = append(c.closers, cl)
	c.mut.Unlock()

	return nil
}

// Close closes every registered closer, even if some fail, and returns the
// joined errors. Later calls return the same result without closing anything.
func (c *Closer) Close() error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return c.err
	}

	c.closed = true

	var errs []error

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	c.closers = nil
	c.err = errors.Join(errs...)

	return c.err
}
