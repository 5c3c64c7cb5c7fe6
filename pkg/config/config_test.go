package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidateLogLevel(t *testing.T) {
	validLevels := []string{"debug", "info", "warn", "error", "DEBUG", "INFO", "WARN", "ERROR"}
	for _, level := range validLevels {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%s) returned error: %v", level, err)
		}
	}

	invalidLevels := []string{"", "trace", "fatal", "invalid", "debugging"}
	for _, level := range invalidLevels {
		if err := ValidateLogLevel(level); err == nil {
			t.Errorf("ValidateLogLevel(%s) should return error", level)
		}
	}
}

func TestValidateSourceURL(t *testing.T) {
	validURLs := []string{
		"https://example.com/list.txt",
		"http://example.com/nodes",
		"https://raw.githubusercontent.com/a/b/main/%E4%B8%AA%E4%BA%BA",
	}
	for _, raw := range validURLs {
		if err := ValidateSourceURL(raw); err != nil {
			t.Errorf("ValidateSourceURL(%s) returned error: %v", raw, err)
		}
	}

	invalidURLs := []string{
		"",
		"ftp://example.com/list.txt",
		"example.com/list.txt",
		"https://",
		"not a url",
	}
	for _, raw := range invalidURLs {
		if err := ValidateSourceURL(raw); err == nil {
			t.Errorf("ValidateSourceURL(%s) should return error", raw)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nodefilter.conf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestSetupDefaults(t *testing.T) {
	t.Setenv(configEnvVar, "")

	cfg, err := Setup()
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File != "stdout" {
		t.Errorf("default log file = %s, want stdout", cfg.Logging.File)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("default fetch timeout = %s, want 30s", cfg.Fetch.Timeout)
	}
	if cfg.Verify.Strict {
		t.Error("strict verification should default to off")
	}
	if cfg.Verify.OffenderLimit != 3 {
		t.Errorf("default offender limit = %d, want 3", cfg.Verify.OffenderLimit)
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("expected no configured sources, got %d", len(cfg.Sources))
	}
}

func TestSetupFromFile(t *testing.T) {
	path := writeConfig(t, `
sources_custom = ["https://example.com/extra"]

[logging]
level = "debug"
file = "both:filter.log"

[fetch]
timeout = "10s"
user_agent = "nodefilter/1.0"

[verify]
strict = true
offender_limit = 5

[report]
removed_log_limit = 2
example_limit = 1

[sources.kejiland]
enabled = true
output = "nodes.txt"

[sources.mirror]
enabled = true
url = "https://example.com/mirror"
`)
	t.Setenv(configEnvVar, path)

	cfg, err := Setup()
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Fetch.Timeout != 10*time.Second {
		t.Errorf("fetch timeout = %s, want 10s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserAgent != "nodefilter/1.0" {
		t.Errorf("user agent = %s", cfg.Fetch.UserAgent)
	}
	if !cfg.Verify.Strict || cfg.Verify.OffenderLimit != 5 {
		t.Errorf("verify config = %+v", cfg.Verify)
	}
	if cfg.Report.RemovedLogLimit != 2 || cfg.Report.ExampleLimit != 1 {
		t.Errorf("report config = %+v", cfg.Report)
	}
	if len(cfg.Custom) != 1 || cfg.Custom[0] != "https://example.com/extra" {
		t.Errorf("custom sources = %v", cfg.Custom)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(cfg.Sources))
	}
	if !cfg.Sources["kejiland"].Enabled || cfg.Sources["kejiland"].Output != "nodes.txt" {
		t.Errorf("kejiland source = %+v", cfg.Sources["kejiland"])
	}
	if cfg.Sources["mirror"].URL != "https://example.com/mirror" {
		t.Errorf("mirror source = %+v", cfg.Sources["mirror"])
	}
}

func TestSetupMissingExplicitConfig(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "missing.conf"))
	if _, err := Setup(); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestSetupRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
		{"bad timeout", "[fetch]\ntimeout = \"soon\"\n"},
		{"negative offender limit", "[verify]\noffender_limit = -1\n"},
		{"bad source url", "[sources.bad]\nenabled = true\nurl = \"ftp://example.com\"\n"},
		{"bad custom url", "sources_custom = [\"nope\"]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(configEnvVar, writeConfig(t, tc.content))
			if _, err := Setup(); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}
