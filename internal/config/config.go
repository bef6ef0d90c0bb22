// Package config handles site and CLI configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the configuration stored in ~/.config/swu/config.yml.
// Every field can be overridden by an SWU_-prefixed environment variable.
type Config struct {
	BaseURL      string `yaml:"base_url,omitempty" envconfig:"BASE_URL"`
	SiteName     string `yaml:"site_name,omitempty" envconfig:"SITE_NAME"`
	AdsensePubID string `yaml:"adsense_pub_id,omitempty" envconfig:"ADSENSE_PUB_ID"`
	OutDir       string `yaml:"out_dir,omitempty" envconfig:"OUT_DIR"`
	Locale       string `yaml:"locale,omitempty" envconfig:"LOCALE"`
	DayFirst     bool   `yaml:"day_first,omitempty" envconfig:"DAY_FIRST"`
	Precompress  bool   `yaml:"precompress,omitempty" envconfig:"PRECOMPRESS"`
	GzipLevel    string `yaml:"gzip_level,omitempty" envconfig:"GZIP_LEVEL"`
	LogLevel     string `yaml:"log_level,omitempty" envconfig:"LOG_LEVEL"`
	IndexPath    string `yaml:"index_path,omitempty" envconfig:"INDEX_PATH"`
}

// Defaults.
const (
	DefaultBaseURL   = "https://www.swapunits.online"
	DefaultSiteName  = "SwapUnits"
	DefaultOutDir    = "public"
	DefaultLocale    = "en_US"
	DefaultGzipLevel = "default"
	DefaultLogLevel  = "info"
)

// ValidGzipLevels lists the accepted gzip_level values.
var ValidGzipLevels = []string{"none", "fastest", "default", "best"}

// Keys lists the settable keys in file order.
var Keys = []string{
	"base_url", "site_name", "adsense_pub_id", "out_dir", "locale",
	"day_first", "precompress", "gzip_level", "log_level", "index_path",
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		SiteName:  DefaultSiteName,
		OutDir:    DefaultOutDir,
		Locale:    DefaultLocale,
		GzipLevel: DefaultGzipLevel,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks the base URL, gzip level and log level.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", c.BaseURL)
	}
	if !slices.Contains(ValidGzipLevels, c.GzipLevel) {
		return fmt.Errorf("invalid gzip_level: %s (valid: %v)", c.GzipLevel, ValidGzipLevels)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// SiteURL joins the base URL and a site-relative path.
func (c *Config) SiteURL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// ResolvedIndexPath returns the page index database path, defaulting to
// pages.db inside the output directory.
func (c *Config) ResolvedIndexPath() string {
	if c.IndexPath != "" {
		return ExpandPath(c.IndexPath)
	}
	return filepath.Join(ExpandPath(c.OutDir), "pages.db")
}

// Get returns the value of a key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "base_url":
		return c.BaseURL, nil
	case "site_name":
		return c.SiteName, nil
	case "adsense_pub_id":
		return c.AdsensePubID, nil
	case "out_dir":
		return c.OutDir, nil
	case "locale":
		return c.Locale, nil
	case "day_first":
		return strconv.FormatBool(c.DayFirst), nil
	case "precompress":
		return strconv.FormatBool(c.Precompress), nil
	case "gzip_level":
		return c.GzipLevel, nil
	case "log_level":
		return c.LogLevel, nil
	case "index_path":
		return c.IndexPath, nil
	}
	return "", fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys)
}

// Set assigns a key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "base_url":
		c.BaseURL = value
	case "site_name":
		c.SiteName = value
	case "adsense_pub_id":
		c.AdsensePubID = value
	case "out_dir":
		c.OutDir = value
	case "locale":
		c.Locale = value
	case "day_first", "precompress":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %q is not a boolean", key, value)
		}
		if key == "day_first" {
			c.DayFirst = b
		} else {
			c.Precompress = b
		}
	case "gzip_level":
		c.GzipLevel = value
	case "log_level":
		c.LogLevel = value
	case "index_path":
		c.IndexPath = value
	default:
		return fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
