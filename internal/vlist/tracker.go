package vlist

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last scroll event before
// IsScrolling flips back to false.
const DefaultDebounce = 150 * time.Millisecond

// DefaultOverscan is the number of extra items rendered on each side of the
// viewport to mask pop-in while scrolling.
const DefaultOverscan = 5

// Row pairs a visible item with its placement.
type Row[T any] struct {
	Index  int
	Item   T
	Top    int
	Height int
}

// Config configures a List.
type Config struct {
	// ItemHeight is the uniform row height for fixed mode. Ignored when
	// DynamicHeights is set.
	ItemHeight int
	// DynamicHeights switches to per-item measured heights.
	DynamicHeights bool
	// DefaultHeight is the estimate used for unmeasured rows in dynamic
	// mode. Zero falls back to ItemHeight, then to 1.
	DefaultHeight int
	// Viewport is the container extent in rows.
	Viewport int
	// Overscan is the number of extra items rendered per side. Negative
	// values clamp to zero; zero means DefaultOverscan.
	Overscan int
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// OnScrollingChanged, when non-nil, is invoked on every IsScrolling
	// transition. The false edge fires from the debounce timer's
	// goroutine.
	OnScrollingChanged func(bool)
}

// List owns the scroll state for one item sequence: the current offset, the
// derived visible window, and the trailing-debounced IsScrolling flag. All
// window recomputation happens synchronously inside the mutating call; the
// only background activity is the debounce timer, which Close cancels.
type List[T any] struct {
	mu       sync.Mutex
	items    []T
	fixed    *FixedSizer
	registry *HeightRegistry
	viewport int
	overscan int
	offset   int
	window   Window

	scrolling bool
	debounce  time.Duration
	timer     *time.Timer
	closed    bool
	onChange  func(bool)
}

// NewList builds a List over items. The configuration is normalized rather
// than validated: out-of-range values are clamped to something workable.
func NewList[T any](items []T, cfg Config) *List[T] {
	height := cfg.ItemHeight
	if height < 1 {
		height = 1
	}
	overscan := cfg.Overscan
	if overscan == 0 {
		overscan = DefaultOverscan
	} else if overscan < 0 {
		overscan = 0
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	l := &List[T]{
		items:    items,
		viewport: cfg.Viewport,
		overscan: overscan,
		debounce: debounce,
		onChange: cfg.OnScrollingChanged,
	}
	if cfg.DynamicHeights {
		def := cfg.DefaultHeight
		if def < 1 {
			def = height
		}
		l.registry = NewHeightRegistry(len(items), def)
	} else {
		l.fixed = NewFixedSizer(len(items), height)
	}
	l.recompute()
	return l
}

// sizer returns the active sizing model. Callers must hold l.mu.
func (l *List[T]) sizer() Sizer {
	if l.registry != nil {
		return l.registry
	}
	return l.fixed
}

// recompute re-derives the window from the current offset. Callers must
// hold l.mu (or own the list exclusively, as in NewList).
func (l *List[T]) recompute() {
	s := l.sizer()
	l.offset = ClampOffset(l.offset, s.TotalExtent(), l.viewport)
	l.window = ComputeWindow(s, l.offset, l.viewport, l.overscan)
}

// OnScroll records a new scroll offset, recomputes the visible window, and
// marks the list as scrolling until the debounce period passes without
// another event.
func (l *List[T]) OnScroll(raw int) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.offset = raw
	l.recompute()

	wasScrolling := l.scrolling
	l.scrolling = true
	if l.timer == nil {
		l.timer = time.AfterFunc(l.debounce, l.settle)
	} else {
		l.timer.Reset(l.debounce)
	}
	notify := l.onChange
	l.mu.Unlock()

	if !wasScrolling && notify != nil {
		notify(true)
	}
}

// settle is the trailing edge of the debounce: no scroll event has arrived
// for the full quiet period.
func (l *List[T]) settle() {
	l.mu.Lock()
	if l.closed || !l.scrolling {
		l.mu.Unlock()
		return
	}
	l.scrolling = false
	notify := l.onChange
	l.mu.Unlock()

	if notify != nil {
		notify(false)
	}
}

// Close cancels the pending debounce timer. A closed list ignores further
// scroll events, so nothing mutates state after teardown.
func (l *List[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.timer != nil {
		l.timer.Stop()
	}
}

// ScrollToIndex moves the offset to the top of item i and returns the
// applied target. The index clamps to [0, Len-1]; on an empty list the call
// is a no-op returning the current offset. Repeated calls with the same
// index and no intervening scroll yield the same target.
func (l *List[T]) ScrollToIndex(i int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.sizer()
	n := s.Len()
	if n == 0 || l.closed {
		return l.offset
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	l.offset = ClampOffset(s.OffsetOf(i), s.TotalExtent(), l.viewport)
	l.window = ComputeWindow(s, l.offset, l.viewport, l.overscan)
	return l.offset
}

// ScrollToTop resets the offset to zero.
func (l *List[T]) ScrollToTop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.offset = 0
	l.recompute()
}

// ScrollBy shifts the offset by delta rows, clamping at both ends, and runs
// the same scrolling/debounce transition as OnScroll.
func (l *List[T]) ScrollBy(delta int) {
	l.OnScroll(l.Offset() + delta)
}

// Visible returns the currently windowed rows with absolute placements. The
// slice is freshly allocated; callers may keep it.
func (l *List[T]) Visible() []Row[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	placements := Place(l.sizer(), l.window)
	rows := make([]Row[T], 0, len(placements))
	for _, p := range placements {
		rows = append(rows, Row[T]{Index: p.Index, Item: l.items[p.Index], Top: p.Top, Height: p.Height})
	}
	return rows
}

// SetItems replaces the item sequence, preserving heights for surviving
// indices in dynamic mode and re-clamping the offset.
func (l *List[T]) SetItems(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	if l.registry != nil {
		l.registry.Resize(len(items))
	} else {
		l.fixed.Resize(len(items))
	}
	l.recompute()
}

// SetViewport updates the container extent.
func (l *List[T]) SetViewport(extent int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.viewport = extent
	l.recompute()
}

// SetOverscan updates the per-side overscan count. Negative values clamp to
// zero.
func (l *List[T]) SetOverscan(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 {
		n = 0
	}
	l.overscan = n
	l.recompute()
}

// RecordHeight stores a measured height for index i in dynamic mode and
// recomputes the window. No-op in fixed mode.
func (l *List[T]) RecordHeight(i, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.registry == nil {
		return
	}
	l.registry.Record(i, height)
	l.recompute()
}

// InvalidateHeight drops the measurement for index i in dynamic mode,
// reverting it to the default estimate.
func (l *List[T]) InvalidateHeight(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.registry == nil {
		return
	}
	l.registry.Invalidate(i)
	l.recompute()
}

// Len returns the item count.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Offset returns the current (clamped) scroll offset.
func (l *List[T]) Offset() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offset
}

// Viewport returns the container extent.
func (l *List[T]) Viewport() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewport
}

// Window returns the current visible index range.
func (l *List[T]) Window() Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.window
}

// TotalExtent returns the summed height of all items, the value the host
// should use to size its scrollable container.
func (l *List[T]) TotalExtent() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sizer().TotalExtent()
}

// IsScrolling reports whether a scroll event arrived within the debounce
// period.
func (l *List[T]) IsScrolling() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scrolling
}

// ItemSpan returns the absolute top and height of item i under the current
// sizing model, clamping i to the valid range. On an empty list both values
// are zero.
func (l *List[T]) ItemSpan(i int) (top, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.sizer()
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return s.OffsetOf(i), s.HeightOf(i)
}

// ItemAt returns the item whose span contains the absolute position y,
// useful for hit-testing pointer events. The second return is false on an
// empty list.
func (l *List[T]) ItemAt(y int) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.sizer()
	if s.Len() == 0 || y < 0 || y >= s.TotalExtent() {
		return 0, false
	}
	return s.IndexAt(y), true
}
