package leaderboard

import (
	"fmt"
	"slices"
)

// PageSizes are the selectable rows-per-page values.
var PageSizes = []int{5, 10, 20, 25, 50, 100, 500}

// DefaultPageSize is the initial rows-per-page value.
const DefaultPageSize = 20

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// Pager tracks the current page over a row count.
type Pager struct {
	page  int
	size  int
	total int
}

// NewPager creates a pager on the first page. An invalid size falls back to
// DefaultPageSize.
func NewPager(size int) Pager {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	return Pager{size: size}
}

// Page returns the zero-based current page.
func (p Pager) Page() int { return p.page }

// Size returns the rows per page.
func (p Pager) Size() int { return p.size }

// Total returns the row count being paged.
func (p Pager) Total() int { return p.total }

// Pages returns the page count; an empty table still has one page.
func (p Pager) Pages() int {
	if p.total <= 0 || p.size <= 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// Bounds returns the [start, end) slice window of the current page.
func (p Pager) Bounds() (start, end int) {
	start = p.page * p.size
	if start > p.total {
		start = p.total
	}
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

// SetTotal updates the row count, clamping the current page.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.clamp()
}

// Goto moves to page, clamped to the valid range.
func (p *Pager) Goto(page int) {
	p.page = page
	p.clamp()
}

// Next advances one page. It reports whether the page changed.
func (p *Pager) Next() bool {
	before := p.page
	p.Goto(p.page + 1)
	return p.page != before
}

// Prev goes back one page. It reports whether the page changed.
func (p *Pager) Prev() bool {
	before := p.page
	p.Goto(p.page - 1)
	return p.page != before
}

// SetSize changes rows per page, keeping the first visible row on screen.
func (p *Pager) SetSize(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("invalid page size %d (valid: %v)", size, PageSizes)
	}
	first := p.page * p.size
	p.size = size
	p.page = first / size
	p.clamp()
	return nil
}

// CycleSize moves to the next (step > 0) or previous (step < 0) page size,
// wrapping around.
func (p *Pager) CycleSize(step int) {
	i := slices.Index(PageSizes, p.size)
	if i < 0 {
		i = slices.Index(PageSizes, DefaultPageSize)
	}
	n := len(PageSizes)
	i = ((i+step)%n + n) % n
	_ = p.SetSize(PageSizes[i])
}

func (p *Pager) clamp() {
	if last := p.Pages() - 1; p.page > last {
		p.page = last
	}
	if p.page < 0 {
		p.page = 0
	}
}
