package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amp-labs/amp-binsort/bench"
	"github.com/amp-labs/amp-binsort/build"
	termui "github.com/amp-labs/amp-binsort/cli"
	"github.com/amp-labs/amp-binsort/closer"
	"github.com/amp-labs/amp-binsort/demo"
	"github.com/amp-labs/amp-binsort/envutil"
	"github.com/amp-labs/amp-binsort/logger"
	"github.com/amp-labs/amp-binsort/shutdown"
	"github.com/amp-labs/amp-binsort/stage"
	"github.com/amp-labs/amp-binsort/telemetry"
	"github.com/urfave/cli/v2"
)

const appName = "binsort"

// runner owns what before sets up, so after (or a signal) can tear it down.
type runner struct {
	cleanup *closer.Closer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{cleanup: closer.New()}

	return &cli.App{
		Name:      appName,
		Usage:     "stable binary insertion sort: demo, benchmark and property checks",
		Version:   build.Current().String(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "env file (.env, .yaml or .json) whose values override the environment",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "log in JSON",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "gops",
				Usage: "start a gops diagnostics agent",
			},
			&cli.StringFlag{
				Name:  "pyroscope",
				Usage: "pyroscope server address for continuous profiling",
			},
		},
		Before:   r.before,
		After:    r.after,
		Action:   interactive,
		Commands: []*cli.Command{cmdDemo(), cmdBench(), cmdVerify()},
	}
}

// before applies the config file and flags as env overrides on the context,
// then sets up logging, telemetry and diagnostics.
func (r *runner) before(c *cli.Context) error {
	ctx := c.Context

	shutdown.BeforeShutdown(func() { _ = r.cleanup.Close() })

	if path := c.String("config"); path != "" {
		var err error

		ctx, err = envutil.WithFile(ctx, path)
		if err != nil {
			return err
		}
	}

	if c.IsSet("json") {
		ctx = envutil.WithOverride(ctx, "LOG_JSON", strconv.FormatBool(c.Bool("json")))
	}

	if c.IsSet("log-level") {
		ctx = envutil.WithOverride(ctx, "LOG_LEVEL", c.String("log-level"))
	}

	ctx = logger.WithSubsystem(ctx, appName)

	logOpts, err := logger.LoadOptions(ctx, appName, logger.WithStreams(c.App.Writer, c.App.ErrWriter))
	if err != nil {
		return err
	}

	runningStage, err := stage.Current(ctx)
	if err != nil {
		return err
	}

	otelCfg, err := telemetry.LoadConfig(ctx, string(runningStage))
	if err != nil {
		return err
	}

	logHandler, err := telemetry.LogHandler(ctx, otelCfg)
	if err != nil {
		return err
	}

	r.track(ctx, "telemetry", closer.Func(func() error {
		return telemetry.Shutdown(context.WithoutCancel(ctx))
	}))

	if logHandler != nil {
		logOpts.Handlers = append(logOpts.Handlers, logHandler)
	}

	logger.ConfigureLoggingWithOptions(logOpts)

	if err := telemetry.Initialize(ctx, otelCfg); err != nil {
		return err
	}

	if c.Bool("gops") {
		agentCloser, err := startAgent(ctx)
		if err != nil {
			return err
		}

		r.track(ctx, "gops agent", agentCloser)
	}

	if addr := c.String("pyroscope"); addr != "" {
		r.track(ctx, "pyroscope profiler", startProfiler(ctx, addr))
	}

	c.Context = ctx

	return nil
}

func (r *runner) after(*cli.Context) error {
	return r.cleanup.Close()
}

// track registers cl for teardown. If a signal already tore everything down,
// cl has been closed on the spot and any error from that is logged.
func (r *runner) track(ctx context.Context, what string, cl io.Closer) {
	if err := r.cleanup.Add(cl); err != nil {
		logger.Get(ctx).Warn("closed "+what+" during shutdown", "error", err)
	}
}

func cmdDemo() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "sort a few sample inputs and print them before and after",
		Action: runDemo,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "no box drawing characters",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "banner width (defaults to $COLUMNS)",
			},
		},
	}
}

func runDemo(c *cli.Context) error {
	width := c.Int("width")
	if width <= 0 {
		width = termui.TerminalWidth(c.Context)
	}

	opts := []demo.Option{demo.WithWidth(width)}
	if c.Bool("plain") || termui.BannersSuppressed(c.Context) {
		opts = append(opts, demo.WithPlain())
	}

	return demo.Run(c.App.Writer, opts...)
}

func cmdBench() *cli.Command {
	return &cli.Command{
		Name:   "bench",
		Usage:  "time binsort against the standard library sort",
		Action: runBench,
		Description: `
Sizes, seed, value range and repeat count default to BENCH_SIZES, BENCH_SEED,
BENCH_MAX_VALUE and BENCH_REPEAT; flags win over the environment.

Examples:
$ binsort bench --sizes 100,1000 --repeat 5`,
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  "sizes",
				Usage: "input sizes to time",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed",
			},
			&cli.IntFlag{
				Name:  "max-value",
				Usage: "values are drawn from [1, max-value]",
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "time each sort this many times and keep the best",
			},
		},
	}
}

func runBench(c *cli.Context) error {
	cfg, err := bench.LoadConfig(c.Context)
	if err != nil {
		return err
	}

	if c.IsSet("sizes") {
		cfg.Sizes = c.IntSlice("sizes")
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}

	if c.IsSet("max-value") {
		cfg.MaxValue = c.Int("max-value")
	}

	if c.IsSet("repeat") {
		cfg.Repeat = c.Int("repeat")
	}

	return benchWith(c, cfg)
}

func benchWith(c *cli.Context, cfg bench.Config) error {
	report, err := bench.Run(c.Context, cfg)
	if err != nil {
		return err
	}

	return report.Render(c.App.Writer)
}

func cmdVerify() *cli.Command {
	return &cli.Command{
		Name:   "verify",
		Usage:  "check ordering, permutation and stability on random inputs",
		Action: runVerify,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "trials",
				Usage: "number of random inputs (default 200)",
			},
			&cli.IntFlag{
				Name:  "max-len",
				Usage: "longest input length (default 64)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "trials run concurrently (default GOMAXPROCS)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed",
			},
		},
	}
}

func runVerify(c *cli.Context) error {
	return verifyWith(c, bench.VerifyConfig{
		Trials:  c.Int("trials"),
		MaxLen:  c.Int("max-len"),
		Workers: c.Int("workers"),
		Seed:    c.Uint64("seed"),
	})
}

func verifyWith(c *cli.Context, cfg bench.VerifyConfig) error {
	report, err := bench.Verify(c.Context, cfg)
	if report != nil {
		if _, werr := fmt.Fprintf(c.App.Writer, "%d trials: %d passed, %d failed\n",
			report.Trials, report.Passed, report.Failed); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}

// hostTags labels profiles with where they came from.
func hostTags() map[string]string {
	tags := map[string]string{
		"pid": strconv.Itoa(os.Getpid()),
	}

	if hostname, err := os.Hostname(); err == nil {
		tags["hostname"] = hostname
	}

	return tags
}
