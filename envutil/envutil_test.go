package envutil_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amp-labs/amp-binsort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooSmall = errors.New("too small")

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("override value", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithOverride(t.Context(), "TEST_STRING", "hello")

		reader := envutil.String(ctx, "TEST_STRING")
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
		assert.True(t, reader.HasValue())
		assert.Equal(t, "TEST_STRING=hello", reader.String())
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "TEST_STRING_MISSING_XYZ")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
		assert.Equal(t, "TEST_STRING_MISSING_XYZ=<not set>", reader.String())
	})

	t.Run("with default", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "TEST_STRING_MISSING_XYZ", envutil.Default("default"))
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("if missing", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "TEST_STRING_MISSING_XYZ", envutil.IfMissing[string](errTooSmall))
		require.ErrorIs(t, reader.Error(), errTooSmall)
	})
}

func TestProcessEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("BINSORT_TEST_FROM_ENV", "from-env")

	value, err := envutil.String(t.Context(), "BINSORT_TEST_FROM_ENV").Value()
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)

	ctx := envutil.WithOverride(t.Context(), "BINSORT_TEST_FROM_ENV", "from-override")
	value, err = envutil.String(ctx, "BINSORT_TEST_FROM_ENV").Value()
	require.NoError(t, err)
	assert.Equal(t, "from-override", value)
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected bool
		wantErr  bool
	}{
		{name: "true lowercase", value: "true", expected: true},
		{name: "true uppercase", value: "TRUE", expected: true},
		{name: "one", value: "1", expected: true},
		{name: "false", value: "false", expected: false},
		{name: "padded", value: " false ", expected: false},
		{name: "invalid", value: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithOverride(t.Context(), "TEST_BOOL", tt.value)

			value, err := envutil.Bool(ctx, "TEST_BOOL").Value()
			if tt.wantErr {
				require.ErrorIs(t, err, envutil.ErrBadEnvVar)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithOverrides(t.Context(), map[string]string{
		"TEST_INT":      "42",
		"TEST_INT_BAD":  "forty-two",
		"TEST_INT_BIG":  "300",
		"TEST_INT_NEG":  "-7",
		"TEST_INT_TINY": "0",
	})

	value, err := envutil.Int[int](ctx, "TEST_INT").Value()
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	neg, err := envutil.Int[int64](ctx, "TEST_INT_NEG").Value()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), neg)

	_, err = envutil.Int[int](ctx, "TEST_INT_BAD").Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)

	_, err = envutil.Int[int8](ctx, "TEST_INT_BIG").Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)

	_, err = envutil.Int[int](ctx, "TEST_INT_TINY", envutil.Validate(func(v int) error {
		if v < 1 {
			return errTooSmall
		}

		return nil
	})).Value()
	require.ErrorIs(t, err, errTooSmall)

	dflt := envutil.Int[int](ctx, "TEST_INT_MISSING", envutil.Default(9)).ValueOrElse(0)
	assert.Equal(t, 9, dflt)
}

func TestIntList(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithOverrides(t.Context(), map[string]string{
		"TEST_SIZES":     "10, 100,1000,",
		"TEST_SIZES_BAD": "10,ten",
	})

	value, err := envutil.IntList(ctx, "TEST_SIZES").Value()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 100, 1000}, value)

	_, err = envutil.IntList(ctx, "TEST_SIZES_BAD").Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)

	dflt, err := envutil.IntList(ctx, "TEST_SIZES_MISSING", envutil.Default([]int{1, 2})).Value()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, dflt)
}

func TestDurationAndLevel(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithOverrides(t.Context(), map[string]string{
		"TEST_TIMEOUT": "250ms",
		"TEST_LEVEL":   " DEBUG ",
	})

	timeout, err := envutil.Duration(ctx, "TEST_TIMEOUT").Value()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, timeout)

	level, err := envutil.SlogLevel(ctx, "TEST_LEVEL").Value()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestOverridesStack(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithOverrides(t.Context(), map[string]string{"A": "1", "B": "2"})
	ctx = envutil.WithOverride(ctx, "B", "3")

	a, err := envutil.String(ctx, "A").Value()
	require.NoError(t, err)
	assert.Equal(t, "1", a)

	b, err := envutil.String(ctx, "B").Value()
	require.NoError(t, err)
	assert.Equal(t, "3", b)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		return path
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		path := write("bench.yaml", "env:\n  BENCH_SIZES: \"10,20\"\n  BENCH_SEED: \"42\"\n")

		env, err := envutil.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"BENCH_SIZES": "10,20", "BENCH_SEED": "42"}, env)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := write("bench.json", `{"env": {"LOG_LEVEL": "debug"}}`)

		env, err := envutil.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"LOG_LEVEL": "debug"}, env)
	})

	t.Run("dotenv", func(t *testing.T) {
		t.Parallel()

		path := write("bench.env", "# comment\nBENCH_REPEAT=3\nexport LOG_JSON=\"true\"\n")

		env, err := envutil.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "3", env["BENCH_REPEAT"])
		assert.Equal(t, "true", env["LOG_JSON"])
	})

	t.Run("unknown suffix", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.LoadFile(write("bench.toml", "x = 1"))
		require.ErrorIs(t, err, envutil.ErrUnknownFileType)
	})

	t.Run("with file", func(t *testing.T) {
		t.Parallel()

		path := write("overrides.yml", "env:\n  BENCH_MAX_VALUE: \"500\"\n")

		ctx, err := envutil.WithFile(t.Context(), path)
		require.NoError(t, err)

		value, err := envutil.Int[int](ctx, "BENCH_MAX_VALUE").Value()
		require.NoError(t, err)
		assert.Equal(t, 500, value)
	})
}
