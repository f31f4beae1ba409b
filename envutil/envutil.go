// Package envutil reads typed configuration values from the environment.
//
// Every reader takes a context; values set with WithOverrides (for example
// from a config file loaded by LoadFile) win over the process environment.
//
//	size := envutil.Int[int](ctx, "BENCH_MAX_VALUE", envutil.Default(10000)).ValueOrFatal()
package envutil

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Intish is the set of signed integer types Int can produce.
type Intish interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func get(ctx context.Context, key string) Reader[string] {
	val, ok := lookup(ctx, key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the value with strconv.ParseBool after trimming whitespace.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	})

	return apply(rdr, opts)
}

// Int parses a base-10 integer and checks it fits the target type.
func Int[I Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	rdr := Map(get(ctx, key), parseInt[I])

	return apply(rdr, opts)
}

// IntList parses a comma-separated list of integers, e.g. "10,100,1000".
// Empty items are skipped, so trailing commas are harmless.
func IntList(ctx context.Context, key string, opts ...Option[[]int]) Reader[[]int] {
	rdr := Map(get(ctx, key), func(s string) ([]int, error) {
		var out []int

		for item := range strings.SplitSeq(s, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}

			n, err := parseInt[int](item)
			if err != nil {
				return nil, err
			}

			out = append(out, n)
		}

		return out, nil
	})

	return apply(rdr, opts)
}

// Duration parses values like "250ms" or "5s".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	rdr := Map(get(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	})

	return apply(rdr, opts)
}

// SlogLevel parses debug, info, warn or error (case-insensitive).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s))))

		return level, err
	})

	return apply(rdr, opts)
}

func parseInt[I Intish](s string) (I, error) {
	var zero I

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return zero, err
	}

	out := I(n)
	if int64(out) != n {
		return zero, fmt.Errorf("value %d overflows %T", n, zero)
	}

	return out, nil
}
