package viewport

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTrackerNotifiesOnChange(t *testing.T) {
	tr := NewTracker(1024)

	var got []int
	unsub := tr.Subscribe(func(w int) { got = append(got, w) })

	tr.Update(1024) // unchanged
	tr.Update(600)
	tr.Update(600)
	tr.Update(800)

	assert.Equal(t, []int{600, 800}, got)
	assert.Equal(t, 800, tr.Width())

	unsub()
	unsub()
	tr.Update(300)
	assert.Equal(t, []int{600, 800}, got)
	assert.Equal(t, 0, tr.Subscribers())
}

func TestTrackerSubscriberOrder(t *testing.T) {
	tr := NewTracker(0)
	var order []string
	tr.Subscribe(func(int) { order = append(order, "a") })
	tr.Subscribe(func(int) { order = append(order, "b") })

	tr.Update(500)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestTrackerConcurrentUpdates(t *testing.T) {
	tr := NewTracker(0)
	var mu sync.Mutex
	calls := 0
	tr.Subscribe(func(int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			tr.Update(w * 10)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls == 0 || calls > 50 {
		t.Fatalf("expected between 1 and 50 notifications, got %d", calls)
	}
}

func TestStatic(t *testing.T) {
	s := Static(600)
	assert.Equal(t, 600, s.Width())
	unsub := s.Subscribe(func(int) { t.Fatal("static observer must not notify") })
	unsub()
}

func TestCellConversions(t *testing.T) {
	tests := []struct {
		name      string
		px        int
		cellWidth int
		want      int
	}{
		{"exact", 96, 8, 12},
		{"rounds up", 100, 8, 13},
		{"zero", 0, 8, 0},
		{"default cell width", 50, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PixelsToCells(tt.px, tt.cellWidth))
		})
	}

	assert.Equal(t, 768, CellsToPixels(96, 8))
	assert.Equal(t, 800, CellsToPixels(100, 0))
}

func TestTerminalWidthNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if _, ok := TerminalWidth(int(f.Fd()), 8); ok {
		t.Fatal("expected a regular file not to report a terminal width")
	}
}
