package vlist

import (
	"testing"
	"time"
)

func fixedList(n int, cfg Config) *List[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i * 10
	}
	return NewList(items, cfg)
}

func TestVisibleRows(t *testing.T) {
	l := fixedList(1000, Config{ItemHeight: 200, Viewport: 800, Overscan: 5})
	defer l.Close()

	rows := l.Visible()
	if len(rows) != 9 {
		t.Fatalf("got %d visible rows, want 9", len(rows))
	}
	for i, row := range rows {
		if row.Index != i {
			t.Fatalf("row %d has index %d", i, row.Index)
		}
		if row.Top != i*200 || row.Height != 200 {
			t.Fatalf("row %d placement = (top %d, height %d), want (%d, 200)",
				i, row.Top, row.Height, i*200)
		}
		if row.Item != i*10 {
			t.Fatalf("row %d carries item %d, want %d", i, row.Item, i*10)
		}
	}
	if got := l.TotalExtent(); got != 1000*200 {
		t.Fatalf("TotalExtent = %d, want %d", got, 1000*200)
	}
}

func TestOnScrollRecomputesWindow(t *testing.T) {
	l := fixedList(1000, Config{ItemHeight: 200, Viewport: 800, Overscan: 5, Debounce: time.Hour})
	defer l.Close()

	l.OnScroll(100_000)
	if w := l.Window(); w.Start != 495 || w.End != 509 {
		t.Fatalf("window = [%d,%d), want [495,509)", w.Start, w.End)
	}
	if !l.IsScrolling() {
		t.Fatalf("IsScrolling should be true right after a scroll event")
	}

	// Offsets past the extent clamp to the tail.
	l.OnScroll(10_000_000)
	if got := l.Offset(); got != 199_200 {
		t.Fatalf("Offset = %d, want 199200", got)
	}
	if w := l.Window(); w.Start != 991 || w.End != 1000 {
		t.Fatalf("window = [%d,%d), want [991,1000)", w.Start, w.End)
	}
}

func TestScrollToIndexIdempotent(t *testing.T) {
	l := fixedList(1000, Config{ItemHeight: 200, Viewport: 800})
	defer l.Close()

	first := l.ScrollToIndex(42)
	second := l.ScrollToIndex(42)
	if first != second {
		t.Fatalf("ScrollToIndex(42) twice = %d then %d, want equal", first, second)
	}
	if first != 42*200 {
		t.Fatalf("ScrollToIndex(42) = %d, want %d", first, 42*200)
	}
}

func TestScrollToIndexClamps(t *testing.T) {
	l := fixedList(1000, Config{ItemHeight: 200, Viewport: 800})
	defer l.Close()

	// Past the end: index clamps to the last item and the offset to the
	// maximum scrollable position.
	if got := l.ScrollToIndex(5000); got != 199_200 {
		t.Fatalf("ScrollToIndex(5000) = %d, want 199200", got)
	}
	if got := l.ScrollToIndex(-3); got != 0 {
		t.Fatalf("ScrollToIndex(-3) = %d, want 0", got)
	}

	l.ScrollToIndex(500)
	l.ScrollToTop()
	if got := l.Offset(); got != 0 {
		t.Fatalf("Offset after ScrollToTop = %d, want 0", got)
	}
}

func TestEmptyListIsInert(t *testing.T) {
	l := NewList[int](nil, Config{ItemHeight: 200, Viewport: 800})
	defer l.Close()

	if got := l.TotalExtent(); got != 0 {
		t.Fatalf("TotalExtent = %d, want 0", got)
	}
	if w := l.Window(); w.Len() != 0 {
		t.Fatalf("window = [%d,%d), want empty", w.Start, w.End)
	}
	if got := l.ScrollToIndex(5); got != 0 {
		t.Fatalf("ScrollToIndex on empty list = %d, want no-op 0", got)
	}
	if rows := l.Visible(); len(rows) != 0 {
		t.Fatalf("Visible on empty list returned %d rows", len(rows))
	}
	if _, ok := l.ItemAt(0); ok {
		t.Fatalf("ItemAt on empty list should report false")
	}
}

func TestScrollingDebounce(t *testing.T) {
	transitions := make(chan bool, 8)
	l := fixedList(100, Config{
		ItemHeight:         2,
		Viewport:           10,
		Debounce:           30 * time.Millisecond,
		OnScrollingChanged: func(on bool) { transitions <- on },
	})
	defer l.Close()

	l.OnScroll(4)
	select {
	case on := <-transitions:
		if !on {
			t.Fatalf("first transition = false, want true")
		}
	case <-time.After(time.Second):
		t.Fatalf("no scrolling transition observed")
	}

	// Events inside the quiet period keep the flag up without re-firing
	// the observer.
	l.OnScroll(8)
	l.OnScroll(12)
	if !l.IsScrolling() {
		t.Fatalf("IsScrolling = false during event burst")
	}

	select {
	case on := <-transitions:
		if on {
			t.Fatalf("unexpected duplicate true transition")
		}
	case <-time.After(time.Second):
		t.Fatalf("trailing edge never fired")
	}
	if l.IsScrolling() {
		t.Fatalf("IsScrolling = true after quiet period")
	}
}

func TestCloseCancelsDebounce(t *testing.T) {
	fired := make(chan bool, 2)
	l := fixedList(100, Config{
		ItemHeight:         2,
		Viewport:           10,
		Debounce:           20 * time.Millisecond,
		OnScrollingChanged: func(on bool) { fired <- on },
	})

	l.OnScroll(4)
	<-fired // consume the true edge
	l.Close()

	select {
	case on := <-fired:
		t.Fatalf("observer fired (%v) after Close", on)
	case <-time.After(80 * time.Millisecond):
	}

	// A closed list ignores further events.
	l.OnScroll(40)
	if got := l.Offset(); got != 4 {
		t.Fatalf("Offset mutated after Close: %d", got)
	}
}

func TestSetItemsReclampsOffset(t *testing.T) {
	l := fixedList(100, Config{ItemHeight: 10, Viewport: 50, Debounce: time.Hour})
	defer l.Close()

	l.OnScroll(900)
	if got := l.Offset(); got != 900 {
		t.Fatalf("Offset = %d, want 900", got)
	}

	l.SetItems([]int{0, 1, 2, 3})
	if got := l.Offset(); got != 0 {
		t.Fatalf("Offset after shrink = %d, want 0 (content fits viewport)", got)
	}
	if w := l.Window(); w.End != 4 {
		t.Fatalf("window end = %d, want 4", w.End)
	}
}

func TestDynamicHeightsDriveWindow(t *testing.T) {
	items := make([]string, 20)
	l := NewList(items, Config{DynamicHeights: true, DefaultHeight: 2, Viewport: 10, Overscan: 1})
	defer l.Close()

	if got := l.TotalExtent(); got != 40 {
		t.Fatalf("estimated TotalExtent = %d, want 40", got)
	}

	// Measuring the first row taller pushes later rows out of the window.
	l.RecordHeight(0, 9)
	if got := l.TotalExtent(); got != 47 {
		t.Fatalf("TotalExtent after measurement = %d, want 47", got)
	}
	w := l.Window()
	if w.Start != 0 {
		t.Fatalf("window start = %d, want 0", w.Start)
	}
	// Rows 0 (9 high) and 1 intersect the 10-row viewport; plus 1 overscan.
	if w.End != 3 {
		t.Fatalf("window end = %d, want 3", w.End)
	}

	l.InvalidateHeight(0)
	if got := l.TotalExtent(); got != 40 {
		t.Fatalf("TotalExtent after invalidate = %d, want 40", got)
	}

	// RecordHeight is a no-op in fixed mode.
	f := fixedList(5, Config{ItemHeight: 3, Viewport: 10})
	defer f.Close()
	f.RecordHeight(0, 50)
	if got := f.TotalExtent(); got != 15 {
		t.Fatalf("fixed-mode TotalExtent = %d, want 15", got)
	}
}

func TestItemAt(t *testing.T) {
	l := fixedList(10, Config{ItemHeight: 5, Viewport: 20})
	defer l.Close()

	if idx, ok := l.ItemAt(12); !ok || idx != 2 {
		t.Fatalf("ItemAt(12) = (%d, %v), want (2, true)", idx, ok)
	}
	if _, ok := l.ItemAt(50); ok {
		t.Fatalf("ItemAt past extent should report false")
	}
}
