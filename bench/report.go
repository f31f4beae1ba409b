package bench

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render writes a human readable summary of the report to w.
func (r *Report) Render(w io.Writer) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Performance comparison (run %s, seed %d)\n", r.RunID, r.Seed); err != nil {
		return err
	}

	for _, res := range r.Results {
		_, err := p.Fprintf(w,
			"Array size: %d\n  Binary insertion sort: %d µs\n  Reference sort:        %d µs\n  Ratio: %.2fx slower\n",
			res.Size,
			res.Binsort.Microseconds(),
			res.Reference.Microseconds(),
			res.Ratio)
		if err != nil {
			return err
		}
	}

	if len(r.Results) < 2 { //nolint:mnd
		return nil
	}

	binsort, reference := r.Total()

	_, err := p.Fprintf(w, "Total: binary insertion sort %d µs, reference sort %d µs\n",
		binsort.Microseconds(), reference.Microseconds())

	return err
}

// Total is the summed binsort and reference time across all sizes.
func (r *Report) Total() (binsort, reference time.Duration) {
	for _, res := range r.Results {
		binsort += res.Binsort
		reference += res.Reference
	}

	return binsort, reference
}
