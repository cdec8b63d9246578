package vlist

// Sizer describes the vertical geometry of an ordered list of items. All
// units are rows (or pixels; the engine does not care, only that they are
// integral). Implementations must keep every query within bounds: callers
// may pass any integer and receive a clamped answer, never a panic.
type Sizer interface {
	// Len returns the number of items.
	Len() int
	// HeightOf returns the height of item i.
	HeightOf(i int) int
	// OffsetOf returns the absolute top of item i, the sum of all
	// heights before it.
	OffsetOf(i int) int
	// IndexAt returns the index of the item whose span contains the
	// absolute position y, clamped to the first or last item when y is
	// out of range.
	IndexAt(y int) int
	// TotalExtent returns the summed height of all items.
	TotalExtent() int
}

// FixedSizer sizes every item identically. All queries are O(1), which keeps
// per-scroll-event work independent of list length.
type FixedSizer struct {
	length     int
	itemHeight int
}

// NewFixedSizer returns a sizer for length items of itemHeight rows each.
// Non-positive heights are clamped to 1 and negative lengths to 0.
func NewFixedSizer(length, itemHeight int) *FixedSizer {
	if length < 0 {
		length = 0
	}
	if itemHeight < 1 {
		itemHeight = 1
	}
	return &FixedSizer{length: length, itemHeight: itemHeight}
}

func (s *FixedSizer) Len() int { return s.length }

func (s *FixedSizer) HeightOf(int) int { return s.itemHeight }

func (s *FixedSizer) OffsetOf(i int) int {
	if i < 0 {
		return 0
	}
	if i > s.length {
		i = s.length
	}
	return i * s.itemHeight
}

func (s *FixedSizer) IndexAt(y int) int {
	if s.length == 0 || y < 0 {
		return 0
	}
	i := y / s.itemHeight
	if i >= s.length {
		i = s.length - 1
	}
	return i
}

func (s *FixedSizer) TotalExtent() int { return s.length * s.itemHeight }

// Resize changes the item count, preserving the item height.
func (s *FixedSizer) Resize(length int) {
	if length < 0 {
		length = 0
	}
	s.length = length
}

// HeightRegistry is the dynamic-mode sizer: it records measured heights per
// index and falls back to a default estimate for indices not yet measured.
// Cumulative offsets are maintained in a Fenwick tree so OffsetOf and
// IndexAt stay O(log n) instead of re-summing the whole list on every scroll
// event.
//
// The registry never discards a measurement on its own. Callers that replace
// an item in place must call Invalidate for that index; a stale entry yields
// visually wrong but bounded output.
type HeightRegistry struct {
	def      int
	heights  []int
	measured []bool
	tree     *fenwick
}

// NewHeightRegistry returns a registry for length items, estimating every
// unmeasured item at defaultHeight rows. Non-positive defaults clamp to 1.
func NewHeightRegistry(length, defaultHeight int) *HeightRegistry {
	if length < 0 {
		length = 0
	}
	if defaultHeight < 1 {
		defaultHeight = 1
	}
	r := &HeightRegistry{
		def:      defaultHeight,
		heights:  make([]int, length),
		measured: make([]bool, length),
		tree:     newFenwick(length),
	}
	for i := range r.heights {
		r.heights[i] = defaultHeight
		r.tree.add(i, defaultHeight)
	}
	return r
}

// Record stores or overwrites the measured height for index i. Out-of-range
// indices are ignored; non-positive heights clamp to 1.
func (r *HeightRegistry) Record(i, height int) {
	if i < 0 || i >= len(r.heights) {
		return
	}
	if height < 1 {
		height = 1
	}
	if delta := height - r.heights[i]; delta != 0 {
		r.tree.add(i, delta)
	}
	r.heights[i] = height
	r.measured[i] = true
}

// Invalidate resets index i to the default estimate. This is the hook for
// caller-driven "item replaced" events.
func (r *HeightRegistry) Invalidate(i int) {
	if i < 0 || i >= len(r.heights) {
		return
	}
	if delta := r.def - r.heights[i]; delta != 0 {
		r.tree.add(i, delta)
	}
	r.heights[i] = r.def
	r.measured[i] = false
}

// Measured reports whether index i holds a recorded measurement rather than
// the default estimate.
func (r *HeightRegistry) Measured(i int) bool {
	return i >= 0 && i < len(r.measured) && r.measured[i]
}

// Resize grows or shrinks the registry to length items. Measurements for
// surviving indices are preserved; new indices start at the default
// estimate.
func (r *HeightRegistry) Resize(length int) {
	if length < 0 {
		length = 0
	}
	if length == len(r.heights) {
		return
	}
	heights := make([]int, length)
	measured := make([]bool, length)
	n := copy(heights, r.heights)
	copy(measured, r.measured)
	for i := n; i < length; i++ {
		heights[i] = r.def
	}
	r.heights = heights
	r.measured = measured
	r.tree = newFenwick(length)
	for i, h := range heights {
		r.tree.add(i, h)
	}
}

func (r *HeightRegistry) Len() int { return len(r.heights) }

func (r *HeightRegistry) HeightOf(i int) int {
	if i < 0 || i >= len(r.heights) {
		return r.def
	}
	return r.heights[i]
}

func (r *HeightRegistry) OffsetOf(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(r.heights) {
		i = len(r.heights)
	}
	return r.tree.sum(i)
}

func (r *HeightRegistry) IndexAt(y int) int {
	n := len(r.heights)
	if n == 0 || y < 0 {
		return 0
	}
	i := r.tree.find(y)
	if i >= n {
		i = n - 1
	}
	return i
}

func (r *HeightRegistry) TotalExtent() int { return r.tree.sum(len(r.heights)) }

// fenwick is a binary indexed tree over per-item heights, 1-indexed
// internally.
type fenwick struct {
	tree []int
}

func newFenwick(n int) *fenwick {
	return &fenwick{tree: make([]int, n+1)}
}

// add applies delta to item i.
func (f *fenwick) add(i, delta int) {
	for i++; i < len(f.tree); i += i & -i {
		f.tree[i] += delta
	}
}

// sum returns the total of items [0, i).
func (f *fenwick) sum(i int) int {
	total := 0
	for ; i > 0; i -= i & -i {
		total += f.tree[i]
	}
	return total
}

// find returns the index of the item whose cumulative span contains target,
// i.e. the smallest i with sum(i+1) > target. Assumes target >= 0; a target
// at or past the total extent returns the item count.
func (f *fenwick) find(target int) int {
	idx := 0
	bit := 1
	for bit<<1 < len(f.tree) {
		bit <<= 1
	}
	for ; bit > 0; bit >>= 1 {
		next := idx + bit
		if next < len(f.tree) && f.tree[next] <= target {
			idx = next
			target -= f.tree[next]
		}
	}
	return idx
}
