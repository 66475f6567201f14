// Package viewport reports the width of the surface the leaderboard is drawn on.
// Widths are logical pixels so the layout breakpoints stay independent of the
// host: a terminal host converts its cell count with CellsToPixels.
package viewport

import (
	"sync"

	"golang.org/x/term"
)

// DefaultCellWidth is the number of logical pixels one terminal cell stands for.
const DefaultCellWidth = 8

// Observer exposes the current viewport width and resize notifications.
type Observer interface {
	// Width returns the current width in logical pixels, or 0 if unknown.
	Width() int
	// Subscribe registers fn for width changes. The returned func removes it.
	Subscribe(fn func(width int)) (unsubscribe func())
}

// Tracker is an Observer fed by the host's resize events.
type Tracker struct {
	mu     sync.Mutex
	width  int
	nextID int
	subs   map[int]func(int)
}

// NewTracker creates a tracker with an initial width (0 if not yet known).
func NewTracker(width int) *Tracker {
	return &Tracker{
		width: width,
		subs:  make(map[int]func(int)),
	}
}

// Width returns the last reported width.
func (t *Tracker) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}

// Update records a new width and notifies subscribers if it changed.
// Subscribers run on the caller's goroutine, outside the lock.
func (t *Tracker) Update(width int) {
	t.mu.Lock()
	if width == t.width {
		t.mu.Unlock()
		return
	}
	t.width = width
	fns := make([]func(int), 0, len(t.subs))
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(width)
	}
}

// Subscribe registers fn and returns its unsubscribe func. Calling the
// unsubscribe func more than once is a no-op.
func (t *Tracker) Subscribe(fn func(int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, id)
			t.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered listeners.
func (t *Tracker) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Static is an Observer whose width never changes.
type Static int

// Width returns the fixed width.
func (s Static) Width() int { return int(s) }

// Subscribe never fires; the returned func does nothing.
func (s Static) Subscribe(func(int)) func() { return func() {} }

// CellsToPixels converts a terminal column count to logical pixels.
func CellsToPixels(cells, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cells * cellWidth
}

// PixelsToCells converts logical pixels to terminal cells, rounding up so a
// non-zero width never collapses to nothing.
func PixelsToCells(px, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if px <= 0 {
		return 0
	}
	return (px + cellWidth - 1) / cellWidth
}

// TerminalWidth samples the width of the terminal on fd in logical pixels.
// ok is false when fd is not a terminal.
func TerminalWidth(fd int, cellWidth int) (width int, ok bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return CellsToPixels(cols, cellWidth), true
}
