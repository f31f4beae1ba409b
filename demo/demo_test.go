package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, WithPlain()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "=== Binary Insertion Sort Demo ===\n"))

	for _, want := range []string{
		"Random\n  Original: [64 34 25 12 22 11 90]\n  Sorted:   [11 12 22 25 34 64 90]\n",
		"Small\n  Original: [5 2 4 6 1 3]\n  Sorted:   [1 2 3 4 5 6]\n",
		"Single element\n  Original: [1]\n  Sorted:   [1]\n",
		"Empty\n  Original: []\n  Sorted:   []\n",
		"Duplicates\n  Original: [3 3 3 3]\n  Sorted:   [3 3 3 3]\n",
		"Negative numbers\n  Original: [-5 -2 0 3 1 -1]\n  Sorted:   [-5 -2 -1 0 1 3]\n",
		"Sorted:   [apple banana cherry date elderberry]\n",
		"Sorted:   [David(20) Alice(25) Charlie(25) Bob(30) Eve(30)]\n",
	} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, "╒")
}

func TestRun_Boxed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, WithWidth(40)))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, "╒"+strings.Repeat("═", 38)+"╕", lines[0])
	assert.Contains(t, lines[1], "Binary Insertion Sort Demo")
	assert.Equal(t, 7, strings.Count(buf.String(), "┠"))
}

func TestRun_DefaultWidth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, WithWidth(-3)))

	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, 80, len([]rune(first)))
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestRun_WriteError(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Run(failingWriter{}, WithPlain()), errWrite)
}

func TestPerson(t *testing.T) {
	t.Parallel()

	a := Person{"Alice", 25}
	c := Person{"Charlie", 25}

	assert.False(t, a.LessThan(c))
	assert.False(t, c.LessThan(a))
	assert.False(t, a.Equals(c))
	assert.True(t, a.Equals(Person{"Alice", 25}))
	assert.Equal(t, "Alice(25)", a.String())
}
