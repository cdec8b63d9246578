package vlist

// Window is a half-open index range [Start, End) over the item sequence.
// The zero value is the empty window.
type Window struct {
	Start int
	End   int
}

// Len returns the number of indices the window covers.
func (w Window) Len() int { return w.End - w.Start }

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool { return i >= w.Start && i < w.End }

// Placement positions one rendered item: its index, absolute top offset, and
// height under the current sizing model.
type Placement struct {
	Index  int
	Top    int
	Height int
}

// ComputeWindow maps a scroll position to the minimal contiguous index range
// that covers every item intersecting [offset, offset+viewport), expanded by
// overscan items on each side and clamped to [0, Len). Offsets past the
// scrollable extent clamp to the final items; negative offsets clamp to
// zero. An empty list or non-positive viewport yields the empty window.
func ComputeWindow(s Sizer, offset, viewport, overscan int) Window {
	n := s.Len()
	if n == 0 || viewport <= 0 {
		return Window{}
	}
	if overscan < 0 {
		overscan = 0
	}
	offset = ClampOffset(offset, s.TotalExtent(), viewport)

	first := s.IndexAt(offset)
	last := s.IndexAt(offset + viewport - 1)

	start := first - overscan
	if start < 0 {
		start = 0
	}
	end := last + overscan + 1
	if end > n {
		end = n
	}
	return Window{Start: start, End: end}
}

// Place resolves a window into per-item placements. Cost is O(window size):
// one offset lookup for the first item, then a running sum of heights.
func Place(s Sizer, w Window) []Placement {
	if w.Len() <= 0 {
		return nil
	}
	placements := make([]Placement, 0, w.Len())
	top := s.OffsetOf(w.Start)
	for i := w.Start; i < w.End; i++ {
		h := s.HeightOf(i)
		placements = append(placements, Placement{Index: i, Top: top, Height: h})
		top += h
	}
	return placements
}

// ClampOffset restricts a raw scroll offset to the valid range
// [0, totalExtent-viewport], collapsing to 0 when the content fits inside
// the viewport.
func ClampOffset(offset, totalExtent, viewport int) int {
	maxOffset := totalExtent - viewport
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
