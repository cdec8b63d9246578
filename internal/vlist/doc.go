// Package vlist implements the virtualized list engine behind the invoice
// browser: windowing, scroll tracking, and infinite-scroll coordination for
// large or unbounded item sequences.
//
// # Overview
//
// Rendering thousands of rows per frame is wasted work when a terminal shows
// a few dozen. vlist maps a scroll offset to the minimal contiguous index
// range worth rendering, positions those rows absolutely, and decides when
// the host should request the next page from its data source. The package
// has no UI dependencies; internal/ui adapts it to bubbletea.
//
// # Components
//
// Leaf-first:
//
//   - sizing.go: the Sizer geometry interface with two implementations.
//     FixedSizer answers every query in O(1). HeightRegistry records
//     per-index measured heights over a Fenwick tree, so cumulative offsets
//     and position-to-index lookups cost O(log n) rather than a linear
//     rescan per scroll event.
//   - window.go: ComputeWindow, a pure function from (offset, viewport,
//     overscan, sizer) to a half-open index range, plus Place for absolute
//     per-row placement.
//   - tracker.go: List[T], the stateful wrapper. Owns the current offset,
//     derives IsScrolling via a trailing debounce timer, and exposes
//     ScrollToIndex / ScrollToTop / ScrollBy.
//   - loader.go: Loader, a three-state machine (idle, pending, fetching)
//     that fires the caller's fetch exactly once per threshold crossing.
//
// # Data Flow
//
//	host scroll event
//	      │
//	      ▼
//	List.OnScroll ──> ClampOffset ──> ComputeWindow ──> Visible() rows
//	      │
//	      └──> Loader.Observe(PagingSignals) ──> fetchNextPage (at most
//	           once per crossing)
//
// The window and placements are recomputed synchronously inside each
// mutating call; no background state exists beyond the debounce timer.
//
// # Windowing Contract
//
// For any offset the returned window covers every index whose pixel span
// intersects the viewport, expanded by the overscan count on each side and
// clamped to [0, Len). Offsets beyond the scrollable extent clamp to the
// final items; an empty sequence yields the empty window and a zero total
// extent. No out-of-range index ever escapes the package.
//
// # Error Handling
//
// The engine is a total function over its inputs: negative offsets,
// out-of-range indices, zero-length lists, and non-positive extents are
// normalized or clamped, never surfaced as errors. The single caller
// contract the Loader enforces silently is that fetch is never invoked
// while HasMore is false.
//
// # Concurrency
//
// List methods are safe for concurrent use, but the expected model is a
// single event loop (the bubbletea Update goroutine) feeding OnScroll. The
// mutex exists because the debounce timer fires on its own goroutine; Close
// stops the timer so a disposed List cannot flip IsScrolling after
// teardown. Loader is not synchronized — it belongs to the event loop that
// owns the paging state it observes.
package vlist
