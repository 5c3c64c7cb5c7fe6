package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nodefilter/pkg/config"
	"nodefilter/pkg/fetch"
	"nodefilter/pkg/logger"
	"nodefilter/pkg/pipeline"
	"nodefilter/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.Setup(cfg.Logging.Level, cfg.Logging.File)
	log.Info("node filter starting", "version", version.NodefilterVersion)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sources := fetch.BuildSources(fetch.Catalog, cfg.Sources, cfg.Custom)
	if len(sources) == 0 {
		log.Error("no sources configured")
		return 1
	}

	opts := pipeline.Options{
		Timeout:         cfg.Fetch.Timeout,
		UserAgent:       cfg.Fetch.UserAgent,
		StrictVerify:    cfg.Verify.Strict,
		OffenderLimit:   cfg.Verify.OffenderLimit,
		RemovedLogLimit: cfg.Report.RemovedLogLimit,
		ExampleLimit:    cfg.Report.ExampleLimit,
		Log:             log,
	}

	failed := false
	for _, source := range sources {
		outcome, err := pipeline.Run(ctx, source, opts)
		if err != nil {
			log.Error("source failed", "source", source.ID, "error", err)
			failed = true
			continue
		}
		log.Info("source complete",
			"source", source.ID,
			"removed", outcome.Stats.Removed,
			"kept", outcome.Stats.Kept,
			"wrote", outcome.Wrote,
			"verified", outcome.VerifyOK)
	}

	if failed {
		return 1
	}
	log.Info("all sources processed")
	return 0
}
