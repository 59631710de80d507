package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/torosent/burstload/internal/config"
	"github.com/torosent/burstload/internal/httpclient"
	"github.com/torosent/burstload/internal/metrics"
	"github.com/torosent/burstload/internal/output"
	"github.com/torosent/burstload/internal/runner"
	"github.com/torosent/burstload/internal/tracing"
)

var logger = newLogger(os.Stderr)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.WithError(err).Error("load test aborted")
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

func run(args []string, stdout io.Writer) error {
	loader := config.NewLoader(stdout)
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := tracing.Init(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(provider)
	if provider.Enabled() {
		logger.WithField("endpoint", provider.Endpoint()).Info("exporting request spans over OTLP")
	}

	output.PrintStart(stdout, cfg.Requests, cfg.TargetURL)
	stats := loadTest(ctx, cfg, stdout, provider.Tracer())
	output.PrintReport(stdout, stats)
	return nil
}

func shutdownTracing(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("flush request spans")
	}
}

// loadTest fires one burst at cfg.TargetURL over a single shared client and
// summarizes it. Per-request failures are printed to stdout as they happen.
func loadTest(ctx context.Context, cfg *config.Config, stdout io.Writer, tracer trace.Tracer) metrics.Stats {
	client := httpclient.NewClient()
	defer client.CloseIdleConnections()

	runID := runner.NewRunID()
	requester := &httpRequester{
		client:  client,
		builder: httpclient.NewRequestBuilder(cfg.TargetURL),
		tracer:  tracer,
		runID:   runID,
	}

	r := runner.New(runner.Options{
		Requests:  cfg.Requests,
		Requester: runner.WithLogging(requester, output.NewFailureWriter(stdout)),
		Logger:    logger,
		RunID:     runID,
	})

	result := r.Run(ctx)
	return metrics.Summarize(cfg.Requests, result.Outcomes, result.Duration)
}
