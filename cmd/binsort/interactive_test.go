package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	termui "github.com/amp-labs/amp-binsort/cli"
	"github.com/amp-labs/amp-binsort/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// scriptedTerminal answers a single prompt with input; "\r" is Enter.
func scriptedTerminal(input string) *termui.Terminal {
	return &termui.Terminal{
		In:  io.NopCloser(strings.NewReader(input)),
		Out: nopWriteCloser{io.Discard},
	}
}

func testCliContext(t *testing.T, stdout io.Writer) *cli.Context {
	t.Helper()

	c := cli.NewContext(newApp(stdout, io.Discard), nil, nil)
	c.Context = t.Context()

	return c
}

func TestInteractiveMenu_Demo(t *testing.T) { //nolint:paralleltest
	prevInteractive, prevTerminal := isInteractive, newTerminal
	isInteractive = func() bool { return true }
	newTerminal = func() *termui.Terminal { return scriptedTerminal("\r") }

	t.Cleanup(func() { isInteractive, newTerminal = prevInteractive, prevTerminal })

	out, err := run(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Sorted:   [11 12 22 25 34 64 90]")
}

func TestInteractiveVerify(t *testing.T) { //nolint:paralleltest
	var out bytes.Buffer

	require.NoError(t, interactiveVerify(testCliContext(t, &out), scriptedTerminal("30\r")))
	assert.Equal(t, "30 trials: 30 passed, 0 failed\n", out.String())
}

func TestInteractiveBench(t *testing.T) { //nolint:paralleltest
	var out bytes.Buffer

	require.NoError(t, interactiveBench(testCliContext(t, &out), scriptedTerminal("100\r")))

	assert.Contains(t, out.String(), "Array size: 10\n")
	assert.Contains(t, out.String(), "Array size: 100\n")
	assert.NotContains(t, out.String(), "Array size: 1,000\n")
}

func TestSizesUpTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{5}, sizesUpTo(5))
	assert.Equal(t, []int{10}, sizesUpTo(10))
	assert.Equal(t, []int{10, 100, 250}, sizesUpTo(250))
	assert.Equal(t, []int{10, 100, 1000, 5000}, sizesUpTo(5000))
}

func TestPositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, positive(1))
	require.ErrorIs(t, positive(0), errors.ErrInvalidConfig)
	require.ErrorIs(t, positive(-4), errors.ErrInvalidConfig)
}
