package main

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-binsort/bench"
	termui "github.com/amp-labs/amp-binsort/cli"
	"github.com/amp-labs/amp-binsort/errors"
	"github.com/urfave/cli/v2"
)

// Inputs above this size take noticeably long with an O(n²) move count.
const slowSize = 1000

// Swapped out in tests, which may or may not run on a terminal.
var (
	isInteractive = termui.IsInteractive //nolint:gochecknoglobals
	newTerminal   = termui.Stdio         //nolint:gochecknoglobals
)

// interactive runs when no command is given: a menu on a terminal, the demo otherwise.
func interactive(c *cli.Context) error {
	if !isInteractive() {
		return runDemo(c)
	}

	term := newTerminal()

	idx, _, err := term.Select("What should binsort do?",
		"demo: sort a few sample inputs",
		"bench: compare against the standard library sort",
		"verify: check sort properties on random inputs")
	if err != nil {
		return err
	}

	switch idx {
	case 1:
		return interactiveBench(c, term)
	case 2: //nolint:mnd
		return interactiveVerify(c, term)
	default:
		return runDemo(c)
	}
}

func interactiveBench(c *cli.Context, term *termui.Terminal) error {
	cfg, err := bench.LoadConfig(c.Context)
	if err != nil {
		return err
	}

	largest, err := term.PromptInt("Largest array size", slices.Max(cfg.Sizes), positive)
	if err != nil {
		return err
	}

	if largest > slowSize {
		ok, err := term.Confirm(fmt.Sprintf("Sorting %d elements may take a while. Continue", largest))
		if err != nil || !ok {
			return err
		}
	}

	cfg.Sizes = sizesUpTo(largest)

	return benchWith(c, cfg)
}

func interactiveVerify(c *cli.Context, term *termui.Terminal) error {
	trials, err := term.PromptInt("Trials", bench.DefaultVerifyConfig().Trials, positive)
	if err != nil {
		return err
	}

	return verifyWith(c, bench.VerifyConfig{Trials: trials})
}

func positive(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", errors.ErrInvalidConfig, v)
	}

	return nil
}

// sizesUpTo returns the powers of ten below n, then n itself: 10, 100, ..., n.
func sizesUpTo(n int) []int {
	var sizes []int

	for size := 10; size < n; size *= 10 {
		sizes = append(sizes, size)
	}

	return append(sizes, n)
}
