// Package stage tells which deployment environment binsort runs in, from the
// RUNNING_ENV variable. Telemetry tags every span and log record with it.
package stage

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-binsort/envutil"
)

// Stage represents a deployment environment.
type Stage string

// ErrUnrecognizedStage is returned when RUNNING_ENV holds an invalid stage value.
var ErrUnrecognizedStage = errors.New("unrecognized stage")

const (
	// Local is a developer machine, and the default outside of tests.
	Local Stage = "local"
	// Test is set automatically while running under go test.
	Test Stage = "test"
	// CI is a continuous integration runner, where benchmarks are recorded.
	CI Stage = "ci"
	// Prod is a scheduled benchmark or verification job.
	Prod Stage = "prod"
)

// Parse maps a RUNNING_ENV value to a Stage, ignoring case and surrounding space.
func Parse(s string) (Stage, error) {
	switch st := Stage(strings.ToLower(strings.TrimSpace(s))); st {
	case Local, Test, CI, Prod:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedStage, s)
	}
}

// Current reads RUNNING_ENV. When it is unset the stage is Test inside go test
// and Local everywhere else; an invalid value is an error.
func Current(ctx context.Context) (Stage, error) {
	dflt := Local
	if flag.Lookup("test.v") != nil {
		dflt = Test
	}

	return envutil.Map(envutil.String(ctx, "RUNNING_ENV"), Parse).WithDefault(dflt).Value()
}
