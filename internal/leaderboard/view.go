package leaderboard

import (
	"errors"
	"fmt"

	"coderank/internal/viewport"
)

// Phase is the load lifecycle of a view.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	// ErrAlreadyMounted is returned when Mount is called twice.
	ErrAlreadyMounted = errors.New("leaderboard view already mounted")
	// ErrNotLoading is returned when a result arrives outside the loading phase.
	ErrNotLoading = errors.New("leaderboard view is not loading")
	// ErrUnknownColumn is returned for a sort key outside the schema.
	ErrUnknownColumn = errors.New("unknown column")
)

// SortOrder is the active sort. An empty Key means CSV order.
type SortOrder struct {
	Key  string
	Desc bool
}

// ViewConfig holds the tunables of a ViewState.
type ViewConfig struct {
	Schema     Schema
	Breakpoint int
	PageSize   int
}

// ViewState is the state behind a leaderboard view: rows, filter, sort,
// paging and the compact flag. It is not safe for concurrent use; the host
// mutates it from its event loop only (load completion, resize, input).
type ViewState struct {
	schema     Schema
	filterKey  string
	breakpoint int

	phase   Phase
	rows    []Row
	failure FailureKind
	err     error

	filterEnabled bool
	filterText    string

	compact      bool
	compactKnown bool

	sort  SortOrder
	pager Pager

	observer    viewport.Observer
	unsubscribe func()

	derived []Row
	dirty   bool
}

// NewViewState creates an uninitialized view. Zero config fields take the
// package defaults.
func NewViewState(cfg ViewConfig) *ViewState {
	schema := cfg.Schema
	if len(schema) == 0 {
		schema = DefaultSchema()
	}
	bp := cfg.Breakpoint
	if bp <= 0 {
		bp = CompactBreakpoint
	}
	s := &ViewState{
		schema:     schema,
		breakpoint: bp,
		pager:      NewPager(cfg.PageSize),
		dirty:      true,
	}
	for _, c := range schema {
		if c.Filterable {
			s.filterKey = c.Key
			break
		}
	}
	return s
}

// Mount moves the view into the loading phase. obs is sampled when the load
// completes and observed for resizes afterwards.
func (s *ViewState) Mount(obs viewport.Observer) error {
	if s.phase != PhaseUninitialized {
		return ErrAlreadyMounted
	}
	if obs == nil {
		obs = viewport.Static(0)
	}
	s.observer = obs
	s.phase = PhaseLoading
	return nil
}

// Complete applies a load result. Rows are replaced in one step on success.
// The viewport is sampled on success and on failures that happened after a
// response arrived; on transport failures the compact flag stays unknown
// until the first resize. From here on resizes are observed until Unmount.
func (s *ViewState) Complete(res Result) error {
	if s.phase != PhaseLoading {
		return ErrNotLoading
	}

	if res.OK() {
		s.rows = res.Rows
		s.failure = FailureNone
		s.err = nil
		s.phase = PhaseLoaded
	} else {
		s.rows = nil
		s.failure = res.Failure
		s.err = res.Err
		s.phase = PhaseFailed
	}
	s.dirty = true

	if res.OK() || res.Failure.AfterResponse() {
		s.Resize(s.observer.Width())
	}
	s.unsubscribe = s.observer.Subscribe(s.Resize)
	return nil
}

// Unmount stops observing resizes. It is safe to call more than once.
func (s *ViewState) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Listening reports whether the resize listener is registered.
func (s *ViewState) Listening() bool {
	return s.unsubscribe != nil
}

// Resize re-derives the compact flag from a viewport width. A width of 0
// (unknown) is ignored.
func (s *ViewState) Resize(width int) {
	if width <= 0 {
		return
	}
	s.compact = IsCompact(width, s.breakpoint)
	s.compactKnown = true
}

// Phase returns the load phase.
func (s *ViewState) Phase() Phase { return s.phase }

// Failure returns the reason of a failed load.
func (s *ViewState) Failure() (FailureKind, error) { return s.failure, s.err }

// Rows returns all loaded rows in CSV order.
func (s *ViewState) Rows() []Row { return s.rows }

// Schema returns the column schema.
func (s *ViewState) Schema() Schema { return s.schema }

// Compact returns the compact flag and whether it has been established.
func (s *ViewState) Compact() (compact, known bool) { return s.compact, s.compactKnown }

// FilterEnabled reports whether the Handle filter is shown and applied.
func (s *ViewState) FilterEnabled() bool { return s.filterEnabled }

// FilterText returns the filter input, kept even while the filter is off.
func (s *ViewState) FilterText() string { return s.filterText }

// FilterKey returns the key of the filterable column.
func (s *ViewState) FilterKey() string { return s.filterKey }

// Sort returns the active sort.
func (s *ViewState) Sort() SortOrder { return s.sort }

// Layout returns the layout the columns are resolved against.
func (s *ViewState) Layout() Layout {
	return Layout{Compact: s.compact, FilterEnabled: s.filterEnabled}
}

// Columns returns the schema resolved for the current layout.
func (s *ViewState) Columns() []ResolvedColumn {
	return s.schema.Resolve(s.Layout())
}

// SetFilterEnabled shows or hides the Handle filter.
func (s *ViewState) SetFilterEnabled(enabled bool) {
	if s.filterEnabled == enabled {
		return
	}
	before := s.activeFilter()
	s.filterEnabled = enabled
	s.filterChanged(before)
}

// SetFilterText updates the Handle filter input.
func (s *ViewState) SetFilterText(text string) {
	if s.filterText == text {
		return
	}
	before := s.activeFilter()
	s.filterText = text
	s.filterChanged(before)
}

func (s *ViewState) activeFilter() string {
	if !s.filterEnabled {
		return ""
	}
	return s.filterText
}

func (s *ViewState) filterChanged(before string) {
	if s.activeFilter() != before {
		s.dirty = true
		s.pager.Goto(0)
	}
}

// ToggleSort sorts by key: ascending first, then flipping direction on each
// further call for the same key.
func (s *ViewState) ToggleSort(key string) error {
	if s.schema.Index(key) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	if s.sort.Key == key {
		return s.SetSort(key, !s.sort.Desc)
	}
	return s.SetSort(key, false)
}

// SetSort sorts by key in the given direction. An empty key restores CSV order.
func (s *ViewState) SetSort(key string, desc bool) error {
	if key != "" && s.schema.Index(key) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	s.sort = SortOrder{Key: key, Desc: desc && key != ""}
	s.dirty = true
	s.pager.Goto(0)
	return nil
}

// Filtered returns every row passing the filter, in sort order.
func (s *ViewState) Filtered() []Row {
	s.refresh()
	return s.derived
}

// Visible returns the rows of the current page.
func (s *ViewState) Visible() []Row {
	s.refresh()
	start, end := s.pager.Bounds()
	return s.derived[start:end]
}

// Pager returns a snapshot of the paging state.
func (s *ViewState) Pager() Pager {
	s.refresh()
	return s.pager
}

// NextPage advances one page.
func (s *ViewState) NextPage() bool {
	s.refresh()
	return s.pager.Next()
}

// PrevPage goes back one page.
func (s *ViewState) PrevPage() bool {
	s.refresh()
	return s.pager.Prev()
}

// GotoPage jumps to a zero-based page, clamped to the valid range.
func (s *ViewState) GotoPage(page int) {
	s.refresh()
	s.pager.Goto(page)
}

// LastPage jumps to the final page.
func (s *ViewState) LastPage() {
	s.refresh()
	s.pager.Goto(s.pager.Pages() - 1)
}

// SetPageSize changes the rows per page; size must be one of PageSizes.
func (s *ViewState) SetPageSize(size int) error {
	s.refresh()
	return s.pager.SetSize(size)
}

// CyclePageSize steps through PageSizes.
func (s *ViewState) CyclePageSize(step int) {
	s.refresh()
	s.pager.CycleSize(step)
}

func (s *ViewState) refresh() {
	if !s.dirty {
		return
	}
	rows := s.rows
	if f := s.activeFilter(); f != "" && s.filterKey != "" {
		rows = FilterByPrefix(rows, s.filterKey, f)
	}
	if s.sort.Key != "" {
		if col, ok := s.schema.Lookup(s.sort.Key); ok {
			rows = SortRows(rows, col, s.sort.Desc)
		}
	}
	if rows == nil {
		rows = []Row{}
	}
	s.derived = rows
	s.pager.SetTotal(len(rows))
	s.dirty = false
}
