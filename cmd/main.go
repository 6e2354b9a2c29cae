// Command scoutboard builds the dashboard payload from the players and
// rankings tables and prints a one-line summary.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/okian/scoutboard/internal/adapters/sink"
	"github.com/okian/scoutboard/internal/adapters/source"
	app "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/config"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := 0
	if err := run(ctx, os.Stdout); err != nil {
		os.Stderr.WriteString("build failed: " + err.Error() + "\n")
		code = 1
	}
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

// run loads the configuration, executes one build and writes the summary
// line to out.
func run(ctx context.Context, out io.Writer) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(logger.Named("build")),
		app.WithSource(source.NewTables(cfg.PlayersPath, cfg.RankingsPath)),
		app.WithSink(sink.NewJSONWriter(cfg.OutputPath, sink.WithIndent(cfg.Indent))),
	)
	res, runErr := svc.Run(ctx)

	// Export metrics for failed runs too.
	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Get().Warn(ctx, "metrics textfile not written", logger.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	_, err = io.WriteString(out, "Generated "+res.OutputPath+" with "+strconv.Itoa(res.Players)+" players\n")
	return err
}
