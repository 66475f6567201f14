package ui

import (
	"context"
	"fmt"
	"strings"

	"coderank/internal/leaderboard"
	"coderank/internal/viewport"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// PageTitle is the heading of the leaderboard page.
const PageTitle = "Current Code Ranking Leaderboard"

// LoadFunc fetches the leaderboard once.
type LoadFunc func(ctx context.Context) leaderboard.Result

// loadedMsg carries the fetch result back into the update loop.
type loadedMsg struct {
	res leaderboard.Result
}

// PageConfig configures a LeaderboardPage.
type PageConfig struct {
	View leaderboard.ViewConfig

	// CellWidth converts terminal columns to logical pixels.
	CellWidth int

	// InitialWidth is the viewport width in pixels until the first
	// WindowSizeMsg arrives. Zero falls back to FallbackWidth cells.
	InitialWidth int

	// Theme is a ui.theme value: auto, light or dark.
	Theme string

	Load   LoadFunc
	Logger *zap.Logger
}

// LeaderboardPage is the interactive leaderboard.
type LeaderboardPage struct {
	layout LayoutConfig

	view    *leaderboard.ViewState
	tracker *viewport.Tracker
	load    LoadFunc
	logger  *zap.Logger

	table   table.Model
	filter  textinput.Model
	spinner spinner.Model
	pages   paginator.Model
	help    help.Model
	keys    keyMap

	filterFocused bool
	colCursor     int   // schema index of the focused column
	offset        int   // first unpinned schema index on screen
	shown         []int // schema indices currently rendered

	styles   Styles
	quitting bool
}

// NewLeaderboardPage creates the page. Nothing is fetched until Init.
func NewLeaderboardPage(cfg PageConfig) LeaderboardPage {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := NewStyles(DetectTheme(cfg.Theme))

	layout := NewLayoutConfig(0, 0, cfg.CellWidth)
	initial := cfg.InitialWidth
	if initial <= 0 {
		initial = layout.ViewportPixels()
	}

	view := leaderboard.NewViewState(cfg.View)

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(layout.GridHeight()),
	)
	t.SetStyles(table.Styles{
		Header:   styles.GridHeader,
		Cell:     styles.GridCell,
		Selected: styles.GridSelected,
	})

	fi := textinput.New()
	fi.Placeholder = filterPlaceholder(view)
	fi.Prompt = ""
	fi.CharLimit = 64

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Spinner

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = styles.Bold.Render("•")
	pg.InactiveDot = styles.Muted.Render("•")

	m := LeaderboardPage{
		layout:  layout,
		view:    view,
		tracker: viewport.NewTracker(initial),
		load:    cfg.Load,
		logger:  logger,
		table:   t,
		filter:  fi,
		spinner: sp,
		pages:   pg,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  styles,
	}
	m.refresh()
	return m
}

// Init mounts the view and starts the single fetch.
func (m LeaderboardPage) Init() tea.Cmd {
	if err := m.view.Mount(m.tracker); err != nil {
		m.logger.Warn("Leaderboard already mounted", zap.Error(err))
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m LeaderboardPage) fetch() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{res: leaderboard.Result{}}
		}
		return loadedMsg{res: load(context.Background())}
	}
}

// Update handles messages.
func (m LeaderboardPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		if err := m.view.Complete(msg.res); err != nil {
			m.logger.Warn("Ignoring late load result", zap.Error(err))
			return m, nil
		}
		if !msg.res.OK() {
			m.logger.Warn("Showing empty leaderboard",
				zap.Stringer("reason", msg.res.Failure),
				zap.Error(msg.res.Err))
		} else {
			m.logger.Debug("Leaderboard ready", zap.Int("rows", len(msg.res.Rows)))
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.view.Phase() != leaderboard.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filterFocused {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m LeaderboardPage) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Blur):
		m.filterFocused = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.view.SetFilterText(m.filter.Value())
	m.refresh()
	return m, cmd
}

func (m LeaderboardPage) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.EnableSearch):
		m.view.SetFilterEnabled(true)
	case key.Matches(msg, m.keys.DisableSearch):
		m.view.SetFilterEnabled(false)
	case key.Matches(msg, m.keys.FocusFilter):
		if !m.view.FilterEnabled() {
			return m, nil
		}
		m.filterFocused = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Sort):
		col := m.view.Schema()[m.colCursor]
		if err := m.view.ToggleSort(col.Key); err != nil {
			m.logger.Warn("Sort rejected", zap.String("column", col.Key), zap.Error(err))
		}
		m.table.SetCursor(0)

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.view.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.view.PrevPage()
	case key.Matches(msg, m.keys.FirstPage):
		m.view.GotoPage(0)
	case key.Matches(msg, m.keys.LastPage):
		m.view.LastPage()
	case key.Matches(msg, m.keys.BiggerPage):
		m.view.CyclePageSize(1)
	case key.Matches(msg, m.keys.SmallerPage):
		m.view.CyclePageSize(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGrid()
		return m, nil

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m LeaderboardPage) quit() (tea.Model, tea.Cmd) {
	m.view.Unmount()
	m.quitting = true
	return m, tea.Quit
}

// SetSize updates the size and feeds the width, in pixels, to the tracker.
func (m *LeaderboardPage) SetSize(w, h int) {
	m.layout = NewLayoutConfig(w, h, m.layout.CellWidth)
	m.help.Width = m.layout.TerminalWidth
	m.tracker.Update(m.layout.ViewportPixels())
	m.refresh()
}

// View renders the page.
func (m LeaderboardPage) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(PageTitle))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderControls())
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.layout.TerminalWidth))
	sb.WriteString("\n")

	if m.view.FilterEnabled() {
		sb.WriteString(m.renderFilterRow())
		sb.WriteString("\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.renderPager())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderControls renders the Enable/Disable Search radio pair.
func (m LeaderboardPage) renderControls() string {
	radio := func(label string, on bool) string {
		if on {
			return m.styles.RadioOn.Render("(•) " + label)
		}
		return m.styles.RadioOff.Render("( ) " + label)
	}
	enabled := m.view.FilterEnabled()
	return radio("Enable Search", enabled) + "   " + radio("Disable Search", !enabled)
}

// filterPlaceholder names the filterable column in the empty search box.
func filterPlaceholder(view *leaderboard.ViewState) string {
	if c, ok := view.Schema().Lookup(view.FilterKey()); ok {
		return "Search by " + c.Label
	}
	return "Search"
}

// renderFilterRow places the Handle filter input above the Handle column.
func (m LeaderboardPage) renderFilterRow() string {
	indent := 0
	width := 0
	for _, idx := range m.shown {
		rc := m.resolved(idx)
		if rc.FilterActive {
			width = m.layout.ColumnCells(rc.PixelWidth)
			break
		}
		indent += m.layout.OuterCells(rc.PixelWidth)
	}
	if width == 0 {
		return ""
	}

	fi := m.filter
	fi.Width = width
	style := m.styles.FilterBox
	if m.filterFocused {
		style = m.styles.FilterFocus
	}
	return strings.Repeat(" ", indent+CellPaddingH) + style.Render(fi.View())
}

func (m LeaderboardPage) renderStatus() string {
	switch m.view.Phase() {
	case leaderboard.PhaseUninitialized, leaderboard.PhaseLoading:
		return m.spinner.View() + " " + m.styles.Muted.Render("Loading leaderboard...")
	}
	if len(m.view.Visible()) == 0 {
		return m.styles.Muted.Render("No rows found")
	}
	return ""
}

func (m LeaderboardPage) renderPager() string {
	p := m.view.Pager()
	col := m.view.Schema()[m.colCursor]
	info := fmt.Sprintf("Column %s · Page %d of %d · %d rows · %d per page",
		col.Label, p.Page()+1, p.Pages(), p.Total(), p.Size())
	if kind, _ := m.view.Failure(); kind != leaderboard.FailureNone {
		info += " · " + m.styles.Error.Render("load failed ("+kind.String()+")")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Footer.Render(info), "  ", m.pages.View())
}

// moveColumn shifts the column cursor. refresh scrolls it into view.
func (m *LeaderboardPage) moveColumn(delta int) {
	n := len(m.view.Schema())
	m.colCursor = max(0, min(n-1, m.colCursor+delta))
}

// resolved returns the resolved column at schema index idx.
func (m LeaderboardPage) resolved(idx int) leaderboard.ResolvedColumn {
	return m.view.Columns()[idx]
}

// resizeGrid recomputes the grid height for the current chrome.
func (m *LeaderboardPage) resizeGrid() {
	m.layout.FilterVisible = m.view.FilterEnabled()
	m.layout.FullHelp = 0
	if m.help.ShowAll {
		m.layout.FullHelp = len(m.keys.FullHelp()[0]) - 1
	}
	m.table.SetHeight(m.layout.GridHeight())
	m.table.SetWidth(m.layout.TerminalWidth)
}

// refresh rebuilds the grid columns and rows from the view state.
func (m *LeaderboardPage) refresh() {
	m.resizeGrid()

	cols := m.view.Columns()
	m.shown = m.visibleColumns(cols)

	sort := m.view.Sort()
	columns := make([]table.Column, len(m.shown))
	for i, idx := range m.shown {
		rc := cols[idx]
		title := rc.Label
		if rc.Key == sort.Key {
			if sort.Desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		columns[i] = table.Column{Title: title, Width: m.layout.ColumnCells(rc.PixelWidth)}
	}

	visible := m.view.Visible()
	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		row := make(table.Row, len(m.shown))
		for j, idx := range m.shown {
			row[j] = r.Get(cols[idx].Key)
		}
		rows[i] = row
	}

	// Rows must never be wider than the columns while they are swapped.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}

	p := m.view.Pager()
	m.pages.PerPage = 1
	m.pages.SetTotalPages(p.Pages())
	m.pages.Page = p.Page()
	if p.Pages() > 10 {
		m.pages.Type = paginator.Arabic
	} else {
		m.pages.Type = paginator.Dots
	}
}

// visibleColumns picks the pinned columns plus as many unpinned columns as
// fit the terminal, starting at the scroll offset. The offset follows the
// column cursor.
func (m *LeaderboardPage) visibleColumns(cols []leaderboard.ResolvedColumn) []int {
	var pinned, free []int
	used := 0
	for i, c := range cols {
		if c.Pinned {
			pinned = append(pinned, i)
			used += m.layout.OuterCells(c.PixelWidth)
		} else {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return pinned
	}

	avail := max(0, m.layout.TerminalWidth-used)
	fits := func(start int) int {
		n, w := 0, 0
		for _, idx := range free[start:] {
			w += m.layout.OuterCells(cols[idx].PixelWidth)
			if n > 0 && w > avail {
				break
			}
			n++
		}
		return n
	}

	m.offset = max(0, min(m.offset, len(free)-1))
	if pos := indexOf(free, m.colCursor); pos >= 0 {
		if pos < m.offset {
			m.offset = pos
		}
		for pos >= m.offset+fits(m.offset) {
			m.offset++
		}
	}

	out := append([]int(nil), pinned...)
	return append(out, free[m.offset:m.offset+fits(m.offset)]...)
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// FilterFocused reports whether keystrokes go to the Handle filter.
func (m LeaderboardPage) FilterFocused() bool {
	return m.filterFocused
}

// State exposes the underlying view state.
func (m LeaderboardPage) State() *leaderboard.ViewState {
	return m.view
}
