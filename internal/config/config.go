// Package config provides configuration management for the archive scraper.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL        = errors.New("archive.base_url is required")
	ErrMissingUserAgent      = errors.New("archive.user_agent is required")
	ErrInvalidArchiveTimeout = errors.New("archive.timeout_sec must be at least 1")
	ErrInvalidArticleTimeout = errors.New("article.timeout_sec must be non-negative")
	ErrMissingMetadataFile   = errors.New("output.metadata_file is required")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete scraper configuration.
type Config struct {
	Archive ArchiveConfig `yaml:"archive"`
	Article ArticleConfig `yaml:"article"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ArchiveConfig contains settings for the archive-page stage.
type ArchiveConfig struct {
	BaseURL    string `yaml:"base_url"`
	UserAgent  string `yaml:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// ArticleConfig contains settings for the article-page stage.
// A TimeoutSec of 0 leaves article fetches without a deadline, which is
// the historical behavior of the scrape.
type ArticleConfig struct {
	TimeoutSec int `yaml:"timeout_sec"`
}

// OutputConfig defines output file naming.
type OutputConfig struct {
	MetadataFile string `yaml:"metadata_file"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no config file is given:
// the Onet archive layout, a browser user agent, a 10 second timeout on
// archive pages and none on article pages.
func DefaultConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{
			BaseURL:    "https://wiadomosci.onet.pl/archiwum",
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			TimeoutSec: 10,
		},
		Article: ArticleConfig{
			TimeoutSec: 0,
		},
		Output: OutputConfig{
			MetadataFile: "onet_metadata.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Archive.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Archive.UserAgent == "" {
		return ErrMissingUserAgent
	}

	if c.Archive.TimeoutSec < 1 {
		return ErrInvalidArchiveTimeout
	}

	if c.Article.TimeoutSec < 0 {
		return ErrInvalidArticleTimeout
	}

	if c.Output.MetadataFile == "" {
		return ErrMissingMetadataFile
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// ArchiveTimeout returns the archive fetch timeout as a duration.
func (c *Config) ArchiveTimeout() time.Duration {
	return time.Duration(c.Archive.TimeoutSec) * time.Second
}

// ArticleTimeout returns the article fetch timeout. Zero means no timeout.
func (c *Config) ArticleTimeout() time.Duration {
	return time.Duration(c.Article.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Archive: %s, ArchiveTimeout: %ds, ArticleTimeout: %ds, MetadataFile: %s}",
		c.Archive.BaseURL,
		c.Archive.TimeoutSec,
		c.Article.TimeoutSec,
		c.Output.MetadataFile,
	)
}
