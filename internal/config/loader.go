package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nesting levels: CODERANK_FETCH__URL sets fetch.url.
const EnvPrefix = "CODERANK_"

// DefaultFileNames are searched in the working directory when no explicit
// config file is given.
var DefaultFileNames = []string{"coderank.yaml", "coderank.yml"}

// flagKeys maps CLI flag names onto config keys. Flags not listed here are
// command options and never reach the config.
var flagKeys = map[string]string{
	"url":        "fetch.url",
	"timeout":    "fetch.timeout",
	"breakpoint": "ui.compact_breakpoint",
	"cell-width": "ui.cell_width",
	"page-size":  "ui.page_size",
	"theme":      "ui.theme",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-file":   "logging.file",
}

// FindConfigFile returns the config file to use.
// Priority: explicit path > coderank.yaml > coderank.yml
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration from defaults, the config file, environment
// variables and flags. Precedence (highest to lowest): changed flags > env
// vars > config file > defaults. The returned path is the file that was
// read, or "" when none was found.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used := FindConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, used, nil
}

// envKey turns CODERANK_UI__PAGE_SIZE into ui.page_size.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"fetch.url":             d.Fetch.URL,
		"fetch.timeout":         d.Fetch.Timeout,
		"ui.compact_breakpoint": d.UI.CompactBreakpoint,
		"ui.cell_width":         d.UI.CellWidth,
		"ui.page_size":          d.UI.PageSize,
		"ui.theme":              d.UI.Theme,
		"logging.level":         d.Logging.Level,
		"logging.format":        d.Logging.Format,
		"logging.file":          d.Logging.File,
	}
}
