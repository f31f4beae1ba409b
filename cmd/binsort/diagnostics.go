package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/amp-binsort/closer"
	"github.com/amp-labs/amp-binsort/logger"
	"github.com/google/gops/agent"
	"github.com/pyroscope-io/client/pyroscope"
)

func startAgent(ctx context.Context) (io.Closer, error) {
	if err := agent.Listen(agent.Options{}); err != nil {
		return nil, fmt.Errorf("start gops agent: %w", err)
	}

	logger.Get(ctx).Debug("gops agent listening")

	return closer.Quiet(agent.Close), nil
}

// startProfiler is best effort: a missing profiling server only gets logged,
// and the returned closer is nil.
func startProfiler(ctx context.Context, addr string) io.Closer {
	log := logger.Get(ctx)

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   addr,
		Logger:          pyroscopeLogger{log: log},
		Tags:            hostTags(),
		ProfileTypes:    pyroscope.DefaultProfileTypes,
	})
	if err != nil {
		log.Error("start pyroscope agent", "error", err)

		return nil
	}

	return closer.Func(profiler.Stop)
}

// pyroscopeLogger adapts slog to the printf-style logger pyroscope expects.
type pyroscopeLogger struct {
	log *slog.Logger
}

func (p pyroscopeLogger) Infof(format string, args ...any) {
	p.log.Info(fmt.Sprintf(format, args...))
}

func (p pyroscopeLogger) Debugf(format string, args ...any) {
	p.log.Debug(fmt.Sprintf(format, args...))
}

func (p pyroscopeLogger) Errorf(format string, args ...any) {
	p.log.Error(fmt.Sprintf(format, args...))
}
