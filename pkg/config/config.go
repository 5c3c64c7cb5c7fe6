// Package config loads configuration for the node filter.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"nodefilter/pkg/fetch"
)

const (
	defaultConfigPath = "nodefilter.conf"
	configEnvVar      = "NODEFILTER_CONFIG"
)

// Config contains all runtime options for a filter run.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Verify  VerifyConfig  `mapstructure:"verify"`
	Report  ReportConfig  `mapstructure:"report"`
	Custom  []string      `mapstructure:"sources_custom"`
	Sources map[string]fetch.SourceConfig
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// FetchConfig holds document retrieval settings.
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"-"`
	UserAgent string        `mapstructure:"user_agent"`
}

// VerifyConfig holds post-persist verification settings. When Strict is
// set, leftover denied lines fail the run instead of logging a warning.
type VerifyConfig struct {
	Strict        bool `mapstructure:"strict"`
	OffenderLimit int  `mapstructure:"offender_limit"`
}

// ReportConfig holds diagnostic reporting limits.
type ReportConfig struct {
	RemovedLogLimit int `mapstructure:"removed_log_limit"`
	ExampleLimit    int `mapstructure:"example_limit"`
}

// ValidateLogLevel ensures the user-provided log level matches the supported set.
func ValidateLogLevel(level string) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(level)] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", level)
	}
	return nil
}

// ValidateSourceURL confirms that a source location is an absolute
// http(s) URL.
func ValidateSourceURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid source url %s: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid source url %s: scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid source url %s: missing host", raw)
	}
	return nil
}

// Setup loads the TOML configuration file and produces a Config
// instance. A missing file at the default path falls back to defaults;
// a path set via NODEFILTER_CONFIG must exist.
func Setup() (*Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfig() (*Config, error) {
	configPath := defaultConfigPath
	explicit := false
	if fromEnv := strings.TrimSpace(os.Getenv(configEnvVar)); fromEnv != "" {
		configPath = fromEnv
		explicit = true
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	sourceConfigs, err := parseSourceConfigs(v)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sourceConfigs

	cfg.Fetch.Timeout, err = parseDuration(v.GetString("fetch.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid fetch.timeout: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "stdout")
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("verify.strict", false)
	v.SetDefault("verify.offender_limit", 3)
	v.SetDefault("report.removed_log_limit", 3)
	v.SetDefault("report.example_limit", 5)
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

func validateConfig(cfg *Config) error {
	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	if cfg.Fetch.Timeout < 0 {
		return errors.New("fetch.timeout must not be negative")
	}
	if cfg.Verify.OffenderLimit < 0 {
		return errors.New("verify.offender_limit must be >= 0")
	}
	if cfg.Report.RemovedLogLimit < 0 {
		return errors.New("report.removed_log_limit must be >= 0")
	}
	if cfg.Report.ExampleLimit < 0 {
		return errors.New("report.example_limit must be >= 0")
	}

	for id, source := range cfg.Sources {
		if !source.Enabled || source.URL == "" {
			continue
		}
		if err := ValidateSourceURL(source.URL); err != nil {
			return fmt.Errorf("sources.%s: %w", id, err)
		}
	}
	for _, entry := range cfg.Custom {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if err := ValidateSourceURL(trimmed); err != nil {
			return fmt.Errorf("sources_custom: %w", err)
		}
	}

	return nil
}

func parseSourceConfigs(v *viper.Viper) (map[string]fetch.SourceConfig, error) {
	raw := v.GetStringMap("sources")
	sourceConfigs := make(map[string]fetch.SourceConfig)
	for key, value := range raw {
		subMap, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("sources.%s must be a table", key)
		}
		var cfg fetch.SourceConfig
		if err := mapstructure.Decode(subMap, &cfg); err != nil {
			return nil, fmt.Errorf("parse sources.%s: %w", key, err)
		}
		sourceConfigs[strings.ToLower(key)] = cfg
	}

	return sourceConfigs, nil
}
