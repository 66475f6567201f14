package config

import (
	"coderank/internal/leaderboard"
	"coderank/internal/viewport"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// CompactBreakpoint is the viewport width in pixels at or below which the
	// pinned columns shrink.
	CompactBreakpoint int `koanf:"compact_breakpoint" yaml:"compact_breakpoint"`

	// CellWidth converts terminal columns to pixels.
	CellWidth int `koanf:"cell_width" yaml:"cell_width"`

	PageSize int    `koanf:"page_size" yaml:"page_size"`
	Theme    string `koanf:"theme" yaml:"theme"` // auto, light, dark
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		CompactBreakpoint: leaderboard.CompactBreakpoint,
		CellWidth:         viewport.DefaultCellWidth,
		PageSize:          leaderboard.DefaultPageSize,
		Theme:             "auto",
	}
}
