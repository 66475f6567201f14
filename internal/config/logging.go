package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `koanf:"level" yaml:"level"`   // debug, info, warn, error
	Format string `koanf:"format" yaml:"format"` // console, json
	File   string `koanf:"file" yaml:"file"`     // empty: stderr for print, discarded by the TUI
}

// HasFile reports whether log output is redirected to a file.
func (c *LoggingConfig) HasFile() bool {
	return c.File != ""
}
