// Command binsort demonstrates, benchmarks and verifies the binary insertion
// sort in package binsort.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-binsort/logger"
	"github.com/amp-labs/amp-binsort/shutdown"
)

func main() {
	ctx := shutdown.SetupHandler(context.Background())

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		logger.Fatal("binsort failed", "error", err)
	}
}
