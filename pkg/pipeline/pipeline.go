// Package pipeline runs the fetch, filter, persist and verify stages for
// one source.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nodefilter/pkg/fetch"
	"nodefilter/pkg/filtering"
	"nodefilter/pkg/persist"
)

// ErrEmptyResult is returned when filtering leaves no content lines.
var ErrEmptyResult = errors.New("filter produced empty result")

// Options configures a pipeline run.
type Options struct {
	Timeout         time.Duration
	UserAgent       string
	StrictVerify    bool
	OffenderLimit   int
	RemovedLogLimit int
	ExampleLimit    int
	Log             *slog.Logger
}

// Outcome summarises one processed source.
type Outcome struct {
	Source   fetch.Source
	Stats    filtering.Stats
	Wrote    bool
	VerifyOK bool
}

// Run processes a single source end to end. Any stage failure aborts the
// remainder of the pipeline for that source. A verification failure is a
// warning unless StrictVerify is set.
func Run(ctx context.Context, source fetch.Source, opts Options) (Outcome, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("source", source.ID)
	outcome := Outcome{Source: source, VerifyOK: true}

	log.Info("fetching node list", "url", source.URL)
	content, err := fetch.Fetch(ctx, source, fetch.Options{
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
		Log:       log,
	})
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", source.ID, err)
	}

	lines := filtering.SplitLines(content)
	log.Info("fetched node list", "lines", len(lines))
	filtering.LogTally(log, filtering.TallyProtocols(lines))

	result := filtering.Apply(content, filtering.Options{
		Logger:          log,
		RemovedLogLimit: opts.RemovedLogLimit,
	})
	outcome.Stats = result.Stats
	log.Info("filter statistics",
		"total", result.Stats.Total,
		"removed", result.Stats.Removed,
		"kept", result.Stats.Kept)
	filtering.AnalyzeKept(result.Lines, log, opts.ExampleLimit)

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return outcome, fmt.Errorf("%s: %w", source.ID, ErrEmptyResult)
	}

	previous, err := persist.ReadExisting(source.Output)
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", source.ID, err)
	}
	outcome.Wrote, err = persist.Save(source.Output, text, previous, log)
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", source.ID, err)
	}

	persisted, err := persist.ReadExisting(source.Output)
	if err != nil {
		return outcome, fmt.Errorf("%s: verify: %w", source.ID, err)
	}
	outcome.VerifyOK, err = checkPersisted(persisted, opts, log)
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", source.ID, err)
	}
	return outcome, nil
}

// checkPersisted re-scans persisted content for denied lines. Leftovers
// are logged as warnings; with StrictVerify they fail the run instead.
func checkPersisted(persisted string, opts Options, log *slog.Logger) (bool, error) {
	verification := filtering.Verify(persisted, opts.OffenderLimit)
	if verification.OK {
		log.Info("verification passed, no denied prefixes remain")
		return true, nil
	}

	log.Warn("verification found denied lines", "count", verification.Found)
	for _, line := range verification.Offending {
		log.Warn("denied line still present", "line", filtering.Truncate(line, 60))
	}
	if opts.StrictVerify {
		return false, fmt.Errorf("verification failed with %d denied lines", verification.Found)
	}
	return false, nil
}
