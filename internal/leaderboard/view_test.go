package leaderboard

import (
	"errors"
	"testing"

	"coderank/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedView(t *testing.T, obs viewport.Observer) *ViewState {
	t.Helper()
	rows, err := ParseString(sampleCSV)
	require.NoError(t, err)

	v := NewViewState(ViewConfig{})
	require.NoError(t, v.Mount(obs))
	require.NoError(t, v.Complete(Result{Rows: rows}))
	return v
}

func widthOf(cols []ResolvedColumn, key string) int {
	for _, c := range cols {
		if c.Key == key {
			return c.PixelWidth
		}
	}
	return -1
}

func TestViewLifecycleSuccess(t *testing.T) {
	v := NewViewState(ViewConfig{})
	assert.Equal(t, PhaseUninitialized, v.Phase())
	assert.False(t, v.FilterEnabled())

	tr := viewport.NewTracker(1024)
	require.NoError(t, v.Mount(tr))
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.ErrorIs(t, v.Mount(tr), ErrAlreadyMounted)
	assert.Equal(t, 0, tr.Subscribers())

	rows, err := ParseString(sampleCSV)
	require.NoError(t, err)
	require.NoError(t, v.Complete(Result{Rows: rows}))

	assert.Equal(t, PhaseLoaded, v.Phase())
	assert.Len(t, v.Rows(), 4)
	assert.Equal(t, []string{"alice", "Bob", "carol", "alfred"}, handles(v.Visible()))
	compact, known := v.Compact()
	assert.True(t, known)
	assert.False(t, compact)
	assert.True(t, v.Listening())
	assert.Equal(t, 1, tr.Subscribers())

	assert.ErrorIs(t, v.Complete(Result{}), ErrNotLoading)

	v.Unmount()
	v.Unmount()
	assert.False(t, v.Listening())
	assert.Equal(t, 0, tr.Subscribers())
}

func TestViewStatusFailureRendersEmpty(t *testing.T) {
	v := NewViewState(ViewConfig{})
	require.NoError(t, v.Mount(viewport.Static(600)))

	require.NoError(t, v.Complete(Result{Failure: FailureStatus, Err: &StatusError{Code: 500}}))
	assert.Equal(t, PhaseFailed, v.Phase())
	assert.Empty(t, v.Visible())
	assert.Equal(t, 1, v.Pager().Pages())

	kind, err := v.Failure()
	assert.Equal(t, FailureStatus, kind)
	assert.True(t, IsStatus(err, 500))

	compact, known := v.Compact()
	assert.True(t, known, "status failure happens after the response and still samples")
	assert.True(t, compact)
}

func TestViewTransportFailureLeavesCompactUnknown(t *testing.T) {
	tr := viewport.NewTracker(600)
	v := NewViewState(ViewConfig{})
	require.NoError(t, v.Mount(tr))
	require.NoError(t, v.Complete(Result{Failure: FailureTransport, Err: errors.New("dial")}))

	_, known := v.Compact()
	assert.False(t, known)

	tr.Update(700)
	compact, known := v.Compact()
	assert.True(t, known)
	assert.True(t, compact)
}

func TestViewResizeChangesOnlyPinnedWidths(t *testing.T) {
	tr := viewport.NewTracker(1024)
	v := loadedView(t, tr)

	before := v.Columns()
	assert.Equal(t, 100, widthOf(before, KeyRank))
	assert.Equal(t, 150, widthOf(before, KeyHandle))

	tr.Update(600)
	after := v.Columns()
	assert.Equal(t, 50, widthOf(after, KeyRank))
	assert.Equal(t, 100, widthOf(after, KeyHandle))
	for i := 2; i < len(before); i++ {
		assert.Equal(t, before[i].PixelWidth, after[i].PixelWidth, before[i].Key)
	}

	tr.Update(900)
	assert.Equal(t, 100, widthOf(v.Columns(), KeyRank))

	v.Unmount()
	tr.Update(500)
	assert.Equal(t, 100, widthOf(v.Columns(), KeyRank), "unmounted view must not react")
}

func TestViewFilterToggle(t *testing.T) {
	v := loadedView(t, viewport.Static(1024))

	v.SetFilterText("al")
	assert.Len(t, v.Visible(), 4, "filter text is ignored while disabled")

	v.SetFilterEnabled(true)
	assert.Equal(t, []string{"alice", "alfred"}, handles(v.Visible()))
	for _, c := range v.Columns() {
		assert.Equal(t, c.Key == KeyHandle, c.FilterActive, c.Key)
	}

	v.SetFilterEnabled(false)
	assert.Len(t, v.Visible(), 4)
	assert.Equal(t, "al", v.FilterText())
	for _, c := range v.Columns() {
		assert.False(t, c.FilterActive, c.Key)
	}
}

func TestViewToggleSort(t *testing.T) {
	v := loadedView(t, viewport.Static(1024))

	require.NoError(t, v.ToggleSort(KeyCodeforcesRating))
	assert.Equal(t, []string{"carol", "Bob", "alice", "alfred"}, handles(v.Visible()))

	require.NoError(t, v.ToggleSort(KeyCodeforcesRating))
	assert.Equal(t, SortOrder{Key: KeyCodeforcesRating, Desc: true}, v.Sort())
	assert.Equal(t, []string{"alice", "Bob", "carol", "alfred"}, handles(v.Visible()))

	require.NoError(t, v.ToggleSort(KeyHandle))
	assert.Equal(t, []string{"alfred", "alice", "Bob", "carol"}, handles(v.Visible()))

	assert.ErrorIs(t, v.ToggleSort("Nope"), ErrUnknownColumn)

	require.NoError(t, v.SetSort("", true))
	assert.Equal(t, SortOrder{}, v.Sort())
	assert.Equal(t, []string{"alice", "Bob", "carol", "alfred"}, handles(v.Visible()))
}

func TestViewPagingResetsOnSortAndFilter(t *testing.T) {
	v := loadedView(t, viewport.Static(1024))
	require.NoError(t, v.SetPageSize(5))
	assert.Equal(t, 1, v.Pager().Pages())

	require.NoError(t, v.SetPageSize(5))
	assert.Error(t, v.SetPageSize(3))

	rows := make([]Row, 0, 23)
	for i := 0; i < 23; i++ {
		rows = append(rows, Row{KeyRank: string(rune('a' + i)), KeyHandle: "h"})
	}
	big := NewViewState(ViewConfig{PageSize: 5})
	require.NoError(t, big.Mount(nil))
	require.NoError(t, big.Complete(Result{Rows: rows}))

	assert.Equal(t, 5, big.Pager().Pages())
	assert.True(t, big.NextPage())
	assert.True(t, big.NextPage())
	assert.Equal(t, 2, big.Pager().Page())
	assert.Len(t, big.Visible(), 5)

	big.LastPage()
	assert.Len(t, big.Visible(), 3)
	assert.False(t, big.NextPage())

	require.NoError(t, big.ToggleSort(KeyRank))
	assert.Equal(t, 0, big.Pager().Page())

	big.GotoPage(3)
	big.SetFilterEnabled(true)
	assert.Equal(t, 3, big.Pager().Page(), "enabling an empty filter changes nothing")
	big.SetFilterText("h")
	assert.Equal(t, 0, big.Pager().Page())

	big.CyclePageSize(1)
	assert.Equal(t, 10, big.Pager().Size())
}
