// Package leaderboard loads the published coding leaderboard CSV and holds the
// view state (sorting, filtering, paging, responsive widths) used by every
// presentation of it.
package leaderboard

// ValueKind tells how a column's raw text is interpreted for ordering.
type ValueKind int

const (
	KindText ValueKind = iota
	KindInteger
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// Column keys as they appear in the CSV header.
const (
	KeyRank                    = "Rank"
	KeyHandle                  = "Handle"
	KeyCodeforcesHandle        = "Codeforces_Handle"
	KeyCodeforcesRating        = "Codeforces_Rating"
	KeyGFGHandle               = "GFG_Handle"
	KeyGFGContestScore         = "GFG_Contest_Score"
	KeyGFGPracticeScore        = "GFG_Practice_Score"
	KeyLeetcodeHandle          = "Leetcode_Handle"
	KeyLeetcodeRating          = "Leetcode_Rating"
	KeyCodechefHandle          = "Codechef_Handle"
	KeyCodechefRating          = "Codechef_Rating"
	KeyHackerRankHandle        = "HackerRank_Handle"
	KeyHackerRankPracticeScore = "HackerRank_Practice_Score"
	KeyPercentile              = "Percentile"
)

// CompactBreakpoint is the widest viewport (in logical pixels) that still
// uses the compact layout.
const CompactBreakpoint = 768

// IsCompact reports whether width selects the compact layout.
func IsCompact(width, breakpoint int) bool {
	if breakpoint <= 0 {
		breakpoint = CompactBreakpoint
	}
	return width <= breakpoint
}

// Column is one static entry of the column schema.
type Column struct {
	Label string
	Key   string
	Kind  ValueKind
	// Width in logical pixels; CompactWidth replaces it in the compact
	// layout when non-zero.
	Width        int
	CompactWidth int
	Pinned       bool
	// Filterable marks the column that exposes a text filter while the
	// filter is enabled.
	Filterable bool
}

// Schema is an ordered, immutable column table.
type Schema []Column

// Layout is the part of the view state the column set depends on.
type Layout struct {
	Compact       bool
	FilterEnabled bool
}

// ResolvedColumn is a column with its layout-dependent fields applied.
type ResolvedColumn struct {
	Column
	// PixelWidth is the width for the current layout.
	PixelWidth int
	// FilterActive is true when the column shows a filter input.
	FilterActive bool
}

var defaultSchema = Schema{
	{Label: "Rank", Key: KeyRank, Kind: KindInteger, Width: 100, CompactWidth: 50, Pinned: true},
	{Label: "Handle", Key: KeyHandle, Kind: KindText, Width: 150, CompactWidth: 100, Pinned: true, Filterable: true},
	{Label: "Codeforces Handle", Key: KeyCodeforcesHandle, Kind: KindText, Width: 180},
	{Label: "Codeforces Rating", Key: KeyCodeforcesRating, Kind: KindInteger, Width: 150},
	{Label: "GFG Handle", Key: KeyGFGHandle, Kind: KindText, Width: 150},
	{Label: "GFG Contest Score", Key: KeyGFGContestScore, Kind: KindInteger, Width: 180},
	{Label: "GFG Practice Score", Key: KeyGFGPracticeScore, Kind: KindInteger, Width: 180},
	{Label: "Leetcode Handle", Key: KeyLeetcodeHandle, Kind: KindText, Width: 150},
	{Label: "Leetcode Rating", Key: KeyLeetcodeRating, Kind: KindInteger, Width: 150},
	{Label: "Codechef Handle", Key: KeyCodechefHandle, Kind: KindText, Width: 150},
	{Label: "Codechef Rating", Key: KeyCodechefRating, Kind: KindInteger, Width: 150},
	{Label: "HackerRank Handle", Key: KeyHackerRankHandle, Kind: KindText, Width: 180},
	{Label: "HackerRank Practice Score", Key: KeyHackerRankPracticeScore, Kind: KindInteger, Width: 220},
	{Label: "Percentile", Key: KeyPercentile, Kind: KindFloat, Width: 130},
}

// DefaultSchema returns a copy of the leaderboard column schema.
func DefaultSchema() Schema {
	out := make(Schema, len(defaultSchema))
	copy(out, defaultSchema)
	return out
}

// Keys returns the column keys in display order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, c := range s {
		keys[i] = c.Key
	}
	return keys
}

// Lookup finds a column by key.
func (s Schema) Lookup(key string) (Column, bool) {
	for _, c := range s {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Index returns the position of key, or -1.
func (s Schema) Index(key string) int {
	for i, c := range s {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// PinnedCount returns how many leading columns are pinned.
func (s Schema) PinnedCount() int {
	n := 0
	for _, c := range s {
		if !c.Pinned {
			break
		}
		n++
	}
	return n
}

// Resolve applies a layout to the schema. The schema itself is not modified.
func (s Schema) Resolve(l Layout) []ResolvedColumn {
	out := make([]ResolvedColumn, len(s))
	for i, c := range s {
		w := c.Width
		if l.Compact && c.CompactWidth > 0 {
			w = c.CompactWidth
		}
		out[i] = ResolvedColumn{
			Column:       c,
			PixelWidth:   w,
			FilterActive: c.Filterable && l.FilterEnabled,
		}
	}
	return out
}
