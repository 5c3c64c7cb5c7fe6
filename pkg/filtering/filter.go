// Package filtering removes denied proxy-node lines from subscription text.
package filtering

import (
	"log/slog"
	"strings"
)

// Options configures a filter pass.
type Options struct {
	Logger          *slog.Logger
	RemovedLogLimit int
}

type removalLimiter struct {
	limit int
	count int
}

// IsDenied reports whether a line starts with one of DeniedPrefixes.
// Surrounding whitespace is ignored and the match is case-insensitive.
// Blank lines are never denied.
func IsDenied(line string) bool {
	stripped := strings.ToLower(strings.TrimSpace(line))
	if stripped == "" {
		return false
	}
	for _, prefix := range DeniedPrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}

// Apply drops denied lines from the document and keeps everything else
// verbatim, blank lines included. The relative order of kept lines is
// preserved.
func Apply(content string, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lines := SplitLines(content)
	limiter := removalLimiter{limit: opts.RemovedLogLimit}
	result := Result{Lines: make([]string, 0, len(lines))}

	for _, line := range lines {
		result.Stats.Total++
		if IsDenied(line) {
			result.Stats.Removed++
			limiter.log(logger, line)
			continue
		}
		result.Lines = append(result.Lines, line)
	}
	result.Stats.Kept = len(result.Lines)
	return result
}

func (l *removalLimiter) log(logger *slog.Logger, line string) {
	l.count++
	if l.limit <= 0 || l.count > l.limit {
		return
	}
	logger.Debug("removed denied node", "line", Truncate(strings.TrimSpace(line), 60))
}
