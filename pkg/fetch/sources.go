package fetch

import (
	"fmt"
	"sort"
	"strings"
)

// Source identifies one document to fetch and where to persist the
// filtered result.
type Source struct {
	ID      string
	URL     string
	Output  string
	Enabled bool
}

// SourceConfig defines a source configuration entry.
type SourceConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Output  string `mapstructure:"output"`
}

// BuildSources converts source configuration into fetchable sources.
// Configured entries may override catalog URL and output; custom URLs
// become ad-hoc sources. With no configuration at all the catalog
// defaults are used.
func BuildSources(catalog map[string]CatalogEntry, configs map[string]SourceConfig, custom []string) []Source {
	sources := make([]Source, 0)

	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		cfg := configs[id]
		if !cfg.Enabled {
			continue
		}
		url := cfg.URL
		output := cfg.Output
		if def, ok := catalog[id]; ok {
			if url == "" {
				url = def.URL
			}
			if output == "" {
				output = def.Output
			}
		}
		if url == "" {
			continue
		}
		if output == "" {
			output = id + ".txt"
		}
		sources = append(sources, Source{ID: id, URL: url, Output: output, Enabled: true})
	}

	for i, entry := range custom {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		id := fmt.Sprintf("custom_%d", i+1)
		sources = append(sources, Source{ID: id, URL: trimmed, Output: id + ".txt", Enabled: true})
	}

	if len(sources) == 0 {
		defaults := make([]string, 0, len(catalog))
		for id, def := range catalog {
			if def.Default {
				defaults = append(defaults, id)
			}
		}
		sort.Strings(defaults)
		for _, id := range defaults {
			def := catalog[id]
			sources = append(sources, Source{ID: def.ID, URL: def.URL, Output: def.Output, Enabled: true})
		}
	}

	return sources
}
