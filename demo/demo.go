// Package demo prints a handful of small inputs before and after sorting
// them with binsort.
package demo

import (
	"fmt"
	"io"
	"slices"

	"github.com/amp-labs/amp-binsort/binsort"
	"github.com/amp-labs/amp-binsort/cli"
	"github.com/amp-labs/amp-binsort/sortable"
)

const title = "Binary Insertion Sort Demo"

// Person is a name and an age, ordered by age alone. Sorting a list of them
// shows that people of the same age keep their original order.
type Person struct {
	Name string
	Age  int
}

var _ sortable.Sortable[Person] = Person{}

func (p Person) Equals(other Person) bool {
	return p == other
}

func (p Person) LessThan(other Person) bool {
	return p.Age < other.Age
}

func (p Person) String() string {
	return fmt.Sprintf("%s(%d)", p.Name, p.Age)
}

type options struct {
	width int
	plain bool
}

// Option customizes Run.
type Option func(*options)

// WithWidth sets the banner width. Non-positive widths fall back to
// cli.DefaultTerminalWidth.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
	}
}

// WithPlain replaces the box drawing with plain text headings.
func WithPlain() Option {
	return func(o *options) {
		o.plain = true
	}
}

type sample struct {
	name string
	sort func() (before, after string)
}

func ints(name string, s ...int) sample {
	return sample{name: name, sort: func() (string, string) {
		return sortAndFormat(s, binsort.Sort[int])
	}}
}

func sortAndFormat[T any](s []T, sortFn func([]T)) (string, string) {
	s = slices.Clone(s)
	before := fmt.Sprint(s)

	sortFn(s)

	return before, fmt.Sprint(s)
}

func samples() []sample {
	return []sample{
		ints("Random", 64, 34, 25, 12, 22, 11, 90),
		ints("Small", 5, 2, 4, 6, 1, 3),
		ints("Single element", 1),
		ints("Empty"),
		ints("Duplicates", 3, 3, 3, 3),
		ints("Negative numbers", -5, -2, 0, 3, 1, -1),
		{name: "Strings", sort: func() (string, string) {
			return sortAndFormat([]string{"banana", "apple", "cherry", "date", "elderberry"}, binsort.Sort[string])
		}},
		{name: "People by age", sort: func() (string, string) {
			people := []Person{
				{"Alice", 25}, {"Bob", 30}, {"Charlie", 25}, {"David", 20}, {"Eve", 30},
			}

			return sortAndFormat(people, binsort.SortSortable[Person])
		}},
	}
}

// printer remembers the first write error so callers can check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Run writes the demonstration to w.
func Run(w io.Writer, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.width <= 0 {
		o.width = cli.DefaultTerminalWidth
	}

	p := &printer{w: w}

	if o.plain {
		p.printf("=== %s ===\n", title)
	} else {
		p.printf("%s", cli.Banner(title, o.width, cli.AlignCenter))
	}

	for i, smp := range samples() {
		before, after := smp.sort()

		if i > 0 {
			if o.plain {
				p.printf("\n")
			} else {
				p.printf("%s", cli.Divider(o.width))
			}
		}

		p.printf("%s\n", smp.name)
		p.printf("  Original: %s\n", before)
		p.printf("  Sorted:   %s\n", after)
	}

	return p.err
}
