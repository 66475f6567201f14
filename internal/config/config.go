package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"coderank/internal/leaderboard"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all coderank configuration.
type Config struct {
	// Leaderboard source
	Fetch FetchConfig `koanf:"fetch" yaml:"fetch"`

	// Terminal presentation
	UI UIConfig `koanf:"ui" yaml:"ui"`

	// Logging
	Logging LoggingConfig `koanf:"logging" yaml:"logging"`
}

// FetchConfig configures the CSV download.
type FetchConfig struct {
	URL     string `koanf:"url" yaml:"url"`
	Timeout string `koanf:"timeout" yaml:"timeout"` // duration, "0" disables
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			URL:     leaderboard.DefaultURL,
			Timeout: "0",
		},
		UI: *DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetFetchTimeout returns the fetch timeout as a duration. Zero means no
// deadline.
func (c *Config) GetFetchTimeout() time.Duration {
	if c.Fetch.Timeout == "" || c.Fetch.Timeout == "0" {
		return 0
	}
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Fetch.URL) == "" {
		errs = append(errs, errors.New("fetch.url is empty"))
	} else if u, err := url.Parse(c.Fetch.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("fetch.url %q is not an absolute URL", c.Fetch.URL))
	}

	if c.Fetch.Timeout != "" && c.Fetch.Timeout != "0" {
		if d, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("fetch.timeout: %w", err))
		} else if d < 0 {
			errs = append(errs, fmt.Errorf("fetch.timeout %s is negative", d))
		}
	}

	if !leaderboard.ValidPageSize(c.UI.PageSize) {
		errs = append(errs, fmt.Errorf("invalid ui.page_size: %d (valid: %v)", c.UI.PageSize, leaderboard.PageSizes))
	}
	if c.UI.CompactBreakpoint <= 0 {
		errs = append(errs, fmt.Errorf("ui.compact_breakpoint must be positive, got %d", c.UI.CompactBreakpoint))
	}
	if c.UI.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("ui.cell_width must be positive, got %d", c.UI.CellWidth))
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		errs = append(errs, fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes))
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, ValidLogFormats))
	}

	return errors.Join(errs...)
}
