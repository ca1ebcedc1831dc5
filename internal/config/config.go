// Package config handles configuration loading for NewsNugget.
// It supports YAML config files, a .env file and environment variable
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NEWSNUGGET_API_PORT.
const EnvPrefix = "NEWSNUGGET"

// Config represents the complete application configuration.
type Config struct {
	Fetch    FetchConfig    `mapstructure:"fetch"    yaml:"fetch"    json:"fetch"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	Feed     FeedConfig     `mapstructure:"feed"     yaml:"feed"     json:"feed"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"      json:"api"`
	Report   ReportConfig   `mapstructure:"report"   yaml:"report"   json:"report"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"  json:"logging"`

	file string
}

// FetchConfig controls outbound HTTP requests for articles and feeds.
type FetchConfig struct {
	TimeoutSec        int    `mapstructure:"timeout_sec"         yaml:"timeout_sec"         json:"timeout_sec"`
	UserAgent         string `mapstructure:"user_agent"          yaml:"user_agent"          json:"user_agent"`
	MaxBodyBytes      int64  `mapstructure:"max_body_bytes"      yaml:"max_body_bytes"      json:"max_body_bytes"`
	RateLimit         int    `mapstructure:"rate_limit"          yaml:"rate_limit"          json:"rate_limit"` // requests per second per host, 0 = unlimited
	CacheTTL          int    `mapstructure:"cache_ttl"           yaml:"cache_ttl"           json:"cache_ttl"`  // seconds, 0 = no cache
	AllowPrivateHosts bool   `mapstructure:"allow_private_hosts" yaml:"allow_private_hosts" json:"allow_private_hosts"`
}

// AnalysisConfig holds text analysis settings.
type AnalysisConfig struct {
	TopKeywords      int  `mapstructure:"top_keywords"      yaml:"top_keywords"      json:"top_keywords"`
	StemKeywords     bool `mapstructure:"stem_keywords"     yaml:"stem_keywords"     json:"stem_keywords"`
	SummarySentences int  `mapstructure:"summary_sentences" yaml:"summary_sentences" json:"summary_sentences"`
	SummaryWords     int  `mapstructure:"summary_words"     yaml:"summary_words"     json:"summary_words"`
}

// FeedConfig holds feed batch settings.
type FeedConfig struct {
	Limit       int `mapstructure:"limit"       yaml:"limit"       json:"limit"`
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency" json:"concurrency"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"         json:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"         json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins" json:"cors_origins"`
}

// ReportConfig holds rendering settings.
type ReportConfig struct {
	Format     string `mapstructure:"format"      yaml:"format"      json:"format"` // "text", "json" or "html"
	ChartWidth int    `mapstructure:"chart_width" yaml:"chart_width" json:"chart_width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Timeout returns the fetch timeout as a duration.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

// CacheDuration returns the page cache TTL as a duration.
func (f FetchConfig) CacheDuration() time.Duration {
	return time.Duration(f.CacheTTL) * time.Second
}

// Addr returns host:port for the API listener.
func (a APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// File returns the config file that was read, or "" when only defaults and
// environment variables were used.
func (c *Config) File() string { return c.file }

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.newsnugget/config.yaml (home directory)
//  3. /etc/newsnugget/config.yaml (system)
//
// A .env file in the working directory is loaded first; variables already
// set in the environment win. Environment variables override config file
// values. Format: NEWSNUGGET_<SECTION>_<KEY>, e.g. NEWSNUGGET_FETCH_TIMEOUT_SEC.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".newsnugget"))
	v.AddConfigPath("/etc/newsnugget")

	// Config file is optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// defaults doubles as the list of known keys for EnvOverrides.
var defaults = map[string]any{
	"fetch.timeout_sec":         20,
	"fetch.user_agent":          "Mozilla/5.0 (compatible; NewsNugget/1.0; +https://github.com/seenimoa/newsnugget)",
	"fetch.max_body_bytes":      5 << 20,
	"fetch.rate_limit":          2,
	"fetch.cache_ttl":           600, // 10 minutes
	"fetch.allow_private_hosts": false,

	"analysis.top_keywords":      10,
	"analysis.stem_keywords":     false,
	"analysis.summary_sentences": 5,
	"analysis.summary_words":     100,

	"feed.limit":       10,
	"feed.concurrency": 4,

	"api.host":         "0.0.0.0",
	"api.port":         8080,
	"api.cors_origins": []string{"*"},

	"report.format":      "text",
	"report.chart_width": 600,

	"logging.level":  "info",
	"logging.format": "text",
}

// Validate rejects settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Fetch.TimeoutSec > 0, "fetch.timeout_sec must be positive, got %d", c.Fetch.TimeoutSec)
	check(c.Fetch.MaxBodyBytes > 0, "fetch.max_body_bytes must be positive, got %d", c.Fetch.MaxBodyBytes)
	check(c.Fetch.RateLimit >= 0, "fetch.rate_limit must not be negative, got %d", c.Fetch.RateLimit)
	check(c.Fetch.CacheTTL >= 0, "fetch.cache_ttl must not be negative, got %d", c.Fetch.CacheTTL)
	check(c.Analysis.TopKeywords > 0, "analysis.top_keywords must be positive, got %d", c.Analysis.TopKeywords)
	check(c.Analysis.SummarySentences > 0, "analysis.summary_sentences must be positive, got %d", c.Analysis.SummarySentences)
	check(c.Analysis.SummaryWords > 0, "analysis.summary_words must be positive, got %d", c.Analysis.SummaryWords)
	check(c.Feed.Limit > 0, "feed.limit must be positive, got %d", c.Feed.Limit)
	check(c.Feed.Concurrency > 0, "feed.concurrency must be positive, got %d", c.Feed.Concurrency)
	check(c.API.Port > 0 && c.API.Port < 65536, "api.port out of range: %d", c.API.Port)
	check(c.Report.ChartWidth >= 200, "report.chart_width must be at least 200, got %d", c.Report.ChartWidth)

	switch c.Report.Format {
	case "text", "json", "html":
	default:
		errs = append(errs, fmt.Errorf("report.format must be text, json or html, got %q", c.Report.Format))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
