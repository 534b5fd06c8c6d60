// Package config defines the application configuration and loads it from
// Viper. Defaults are set in cmd/root.go; values may come from a config
// file, environment variables, or command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/logger"
)

// Config is the root configuration for a dealwatch run.
type Config struct {
	App        AppConfig     `yaml:"app"`
	Logger     logger.Config `yaml:"logger"`
	Report     ReportConfig  `yaml:"report"`
	Sources    SourcesConfig `yaml:"sources"`
	Vocabulary classify.Vocabulary
}

// AppConfig represents application-specific settings.
type AppConfig struct {
	// Name is the name of the application.
	Name string `yaml:"name"`
	// Version is the version of the application.
	Version string `yaml:"version"`
	// Environment is the application environment (development, staging, production).
	Environment string `yaml:"environment"`
	// Debug indicates whether debug mode is enabled.
	Debug bool `yaml:"debug"`
}

// ReportConfig holds the run parameters and output destinations.
type ReportConfig struct {
	// SinceDays is the lookback window in days.
	SinceDays int `yaml:"since_days"`
	// CSVPath is the CSV output path.
	CSVPath string `yaml:"csv_path"`
	// JSONPath is the JSON output path.
	JSONPath string `yaml:"json_path"`
}

// SourcesConfig holds the upstream endpoints and transport settings.
type SourcesConfig struct {
	// FilingFeeds are the regulatory-filing feed URLs.
	FilingFeeds []string `yaml:"filing_feeds"`
	// NewsFeeds are operator-supplied generic syndication feed URLs.
	NewsFeeds []string `yaml:"news_feeds"`
	// NewsAPI configures the primary keyword-search news API.
	NewsAPI NewsAPIConfig `yaml:"newsapi"`
	// LongTail configures the secondary article-search API.
	LongTail LongTailConfig `yaml:"longtail"`
	// UserAgent is sent on every upstream request.
	UserAgent string `yaml:"user_agent"`
	// RequestTimeout bounds each upstream HTTP call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// NewsAPIConfig configures the keyword-search news API.
type NewsAPIConfig struct {
	// Endpoint is the search URL.
	Endpoint string `yaml:"endpoint"`
	// Key is the API credential. Its absence is a soft condition: the
	// adapter returns no results instead of failing the run.
	Key string `yaml:"key"`
}

// LongTailConfig configures the long-tail article-search API.
type LongTailConfig struct {
	// Endpoint is the search URL.
	Endpoint string `yaml:"endpoint"`
}

// Default configuration values.
const (
	DefaultSinceDays      = 7
	DefaultCSVPath        = "deals.csv"
	DefaultJSONPath       = "deals.json"
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "dealwatch/1.0 (+https://github.com/jonesrussell/dealwatch)"
)

// DefaultFilingFeeds are the regulatory-filing feeds consulted when the
// config provides none: recent 8-K, S-4, and SC 13D filings.
func DefaultFilingFeeds() []string {
	const edgar = "https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&CIK=&type=%s&company=&dateb=&owner=include&start=0&count=100&output=atom"

	return []string{
		fmt.Sprintf(edgar, "8-K"),
		fmt.Sprintf(edgar, "S-4"),
		fmt.Sprintf(edgar, "SC%%2013D"),
	}
}

// Load builds a Config from the current Viper state.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        viper.GetString("app.name"),
			Version:     viper.GetString("app.version"),
			Environment: viper.GetString("app.environment"),
			Debug:       viper.GetBool("app.debug"),
		},
		Logger: logger.Config{
			Level:       viper.GetString("logger.level"),
			Encoding:    viper.GetString("logger.encoding"),
			Development: viper.GetBool("logger.development"),
		},
		Report: ReportConfig{
			SinceDays: viper.GetInt("report.since_days"),
			CSVPath:   viper.GetString("report.csv_path"),
			JSONPath:  viper.GetString("report.json_path"),
		},
		Sources: SourcesConfig{
			FilingFeeds: viper.GetStringSlice("sources.filing_feeds"),
			NewsFeeds:   viper.GetStringSlice("sources.news_feeds"),
			NewsAPI: NewsAPIConfig{
				Endpoint: viper.GetString("sources.newsapi.endpoint"),
				Key:      viper.GetString("sources.newsapi.key"),
			},
			LongTail: LongTailConfig{
				Endpoint: viper.GetString("sources.longtail.endpoint"),
			},
			UserAgent:      viper.GetString("sources.user_agent"),
			RequestTimeout: viper.GetDuration("sources.request_timeout"),
		},
		Vocabulary: classify.Vocabulary{
			CannabisTerms:      viper.GetStringSlice("vocabulary.cannabis_terms"),
			DealTerms:          viper.GetStringSlice("vocabulary.deal_terms"),
			EntitySplitPhrases: viper.GetStringSlice("vocabulary.entity_split_phrases"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Report.SinceDays <= 0 {
		return errors.New("report lookback window must be positive")
	}

	if c.Report.CSVPath == "" || c.Report.JSONPath == "" {
		return errors.New("report output paths must be specified")
	}

	if c.Sources.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	if len(c.Vocabulary.CannabisTerms) == 0 || len(c.Vocabulary.DealTerms) == 0 {
		return errors.New("vocabulary term sets must not be empty")
	}

	return nil
}
