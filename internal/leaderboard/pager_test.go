package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagerDefaults(t *testing.T) {
	p := NewPager(0)
	assert.Equal(t, DefaultPageSize, p.Size())
	assert.Equal(t, 1, p.Pages())

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	assert.Equal(t, 50, NewPager(50).Size())
	assert.Equal(t, DefaultPageSize, NewPager(7).Size())
}

func TestPagerNavigation(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)
	assert.Equal(t, 3, p.Pages())

	assert.False(t, p.Prev())
	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.False(t, p.Next())
	assert.Equal(t, 2, p.Page())

	start, end := p.Bounds()
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	p.Goto(-4)
	assert.Equal(t, 0, p.Page())
	p.Goto(99)
	assert.Equal(t, 2, p.Page())

	p.SetTotal(3)
	assert.Equal(t, 0, p.Page())
}

func TestPagerSetSizeKeepsFirstRow(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(200)
	p.Goto(3) // first row 30

	assert.NoError(t, p.SetSize(25))
	assert.Equal(t, 1, p.Page()) // rows 25..49 contain row 30

	assert.NoError(t, p.SetSize(5))
	assert.Equal(t, 5, p.Page())

	assert.Error(t, p.SetSize(7))
	assert.Equal(t, 5, p.Size())
}

func TestPagerCycleSize(t *testing.T) {
	p := NewPager(500)
	p.CycleSize(1)
	assert.Equal(t, 5, p.Size())
	p.CycleSize(-1)
	assert.Equal(t, 500, p.Size())
	p.CycleSize(-1)
	assert.Equal(t, 100, p.Size())
}
