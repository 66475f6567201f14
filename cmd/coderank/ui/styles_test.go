package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	orig := hasDarkBackground
	t.Cleanup(func() { hasDarkBackground = orig })

	hasDarkBackground = func() bool { return true }
	if !DetectTheme("auto").IsDark {
		t.Fatalf("expected dark theme on a dark terminal")
	}
	if DetectTheme("light").IsDark {
		t.Fatalf("expected forced light theme to win over the terminal")
	}

	hasDarkBackground = func() bool { return false }
	if DetectTheme("").IsDark {
		t.Fatalf("expected light theme on a light terminal")
	}
	if !DetectTheme("DARK").IsDark {
		t.Fatalf("expected forced dark theme")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if s.RenderDivider(0) != "" {
		t.Fatalf("expected empty divider for zero width")
	}
}

func TestLayoutGridHeight(t *testing.T) {
	l := NewLayoutConfig(100, 30, 8)
	base := l.GridHeight()
	if base != 30-l.ChromeHeight()+GridHeaderHeight {
		t.Fatalf("GridHeight=%d, chrome=%d", base, l.ChromeHeight())
	}

	l.FilterVisible = true
	if l.GridHeight() != base-FilterHeight {
		t.Fatalf("filter row should take one grid line")
	}

	tiny := NewLayoutConfig(100, 5, 8)
	if tiny.GridHeight() != MinGridRows+GridHeaderHeight {
		t.Fatalf("GridHeight should not shrink below %d rows", MinGridRows)
	}

	if got := NewLayoutConfig(0, 0, 0); got.TerminalWidth != FallbackWidth || got.CellWidth != 8 {
		t.Fatalf("unexpected fallback layout: %+v", got)
	}
	if l.ColumnCells(100) != 13 || l.OuterCells(50) != 9 {
		t.Fatalf("unexpected cell conversion")
	}
}
