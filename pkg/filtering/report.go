package filtering

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// TallyProtocols counts content lines by protocol token. Lines with a
// scheme separator are keyed by the scheme, key=value lines by the key.
// Lines matching neither shape are ignored.
func TallyProtocols(lines []string) map[string]int {
	tally := make(map[string]int)
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		var protocol string
		if idx := strings.Index(stripped, "://"); idx >= 0 {
			protocol = strings.ToLower(stripped[:idx])
		} else if idx := strings.Index(stripped, "="); idx >= 0 {
			protocol = strings.ToLower(strings.TrimSpace(stripped[:idx]))
		} else {
			continue
		}
		if protocol == "" {
			continue
		}
		tally[protocol]++
	}
	return tally
}

// LogTally writes one log line per protocol, sorted by name.
func LogTally(logger *slog.Logger, tally map[string]int) {
	if logger == nil {
		logger = slog.Default()
	}
	protocols := make([]string, 0, len(tally))
	for protocol := range tally {
		protocols = append(protocols, protocol)
	}
	sort.Strings(protocols)
	for _, protocol := range protocols {
		logger.Info("fetched protocol", "protocol", protocol, "count", tally[protocol])
	}
}

// AnalyzeKept classifies kept content lines by KnownPrefixes and logs
// counts with percentages plus up to exampleLimit sample lines. The
// classification is diagnostic only and never affects filtering.
func AnalyzeKept(lines []string, logger *slog.Logger, exampleLimit int) map[string]int {
	if logger == nil {
		logger = slog.Default()
	}

	counts := make(map[string]int)
	total := 0
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		total++
		counts[classify(stripped)]++
	}

	order := append([]string{}, KnownPrefixes...)
	order = append(order, OtherProtocol)
	for _, key := range order {
		count := counts[key]
		if count == 0 {
			continue
		}
		percentage := float64(count) / float64(total) * 100
		logger.Info("kept node format", "format", key, "count", count,
			"share", fmt.Sprintf("%.1f%%", percentage))
	}

	if exampleLimit > 0 {
		logged := 0
		for _, line := range lines {
			stripped := strings.TrimSpace(line)
			if stripped == "" {
				continue
			}
			logger.Debug("kept node example", "line", Truncate(stripped, 80))
			logged++
			if logged >= exampleLimit {
				break
			}
		}
	}

	return counts
}

func classify(stripped string) string {
	lower := strings.ToLower(stripped)
	for _, prefix := range KnownPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return prefix
		}
	}
	return OtherProtocol
}
