// Package ui layout constants for consistent spacing and dimensions
package ui

import "coderank/internal/viewport"

// Layout constants for the leaderboard page
const (
	// Chrome above the grid
	TitleHeight    = 2 // title plus blank line
	ControlsHeight = 2 // radio buttons plus divider
	FilterHeight   = 1 // Handle filter input, only while search is enabled

	// Grid
	GridHeaderHeight = 2 // header row plus its bottom border
	CellPaddingH     = 1 // bubbles/table pads each cell on both sides
	MinGridRows      = 3

	// Chrome below the grid
	FooterHeight = 2 // empty-state line plus pager line
	HelpHeight   = 1

	// Responsive fallbacks when the terminal has not reported its size
	FallbackWidth  = 128
	FallbackHeight = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	CellWidth      int
	FilterVisible  bool
	FullHelp       int // extra lines taken by the expanded help view
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height, cellWidth int) LayoutConfig {
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	if cellWidth <= 0 {
		cellWidth = viewport.DefaultCellWidth
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		CellWidth:      cellWidth,
	}
}

// ChromeHeight is the number of lines used by everything except grid rows.
func (l LayoutConfig) ChromeHeight() int {
	h := TitleHeight + ControlsHeight + GridHeaderHeight + FooterHeight + HelpHeight + l.FullHelp
	if l.FilterVisible {
		h += FilterHeight
	}
	return h
}

// GridHeight returns the height handed to the table: header plus body rows.
// The grid takes all vertical space the chrome leaves over.
func (l LayoutConfig) GridHeight() int {
	rows := l.TerminalHeight - l.ChromeHeight()
	if rows < MinGridRows {
		rows = MinGridRows
	}
	return rows + GridHeaderHeight
}

// ColumnCells converts a column pixel width to terminal cells.
func (l LayoutConfig) ColumnCells(px int) int {
	return viewport.PixelsToCells(px, l.CellWidth)
}

// OuterCells is the on-screen width of a column including cell padding.
func (l LayoutConfig) OuterCells(px int) int {
	return l.ColumnCells(px) + 2*CellPaddingH
}

// ViewportPixels is the terminal width expressed in logical pixels.
func (l LayoutConfig) ViewportPixels() int {
	return viewport.CellsToPixels(l.TerminalWidth, l.CellWidth)
}
