package vlist

import "testing"

func TestLoaderSingleFetchPerCrossing(t *testing.T) {
	calls := 0
	fetching := false
	l := NewLoader(200, func() {
		calls++
		fetching = true // caller acknowledges on the first callback
	})

	// A burst of 50 scroll events inside the threshold issues one fetch.
	for i := 0; i < 50; i++ {
		l.Observe(PagingSignals{
			Offset:         9_050 + i,
			Viewport:       800,
			TotalExtent:    10_000,
			HasMore:        true,
			IsFetchingMore: fetching,
		})
	}
	if calls != 1 {
		t.Fatalf("fetchNextPage called %d times, want 1", calls)
	}
	if got := l.Phase(); got != LoadFetching {
		t.Fatalf("phase = %v, want fetching", got)
	}
}

func TestLoaderThresholdBoundary(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		want   bool
	}{
		{"far_from_end", 0, false},
		{"just_outside", 9_000, false}, // remaining == threshold
		{"inside", 9_050, true},        // remaining == 150 < 200
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fired := false
			l := NewLoader(200, func() { fired = true })
			l.Observe(PagingSignals{
				Offset:      tc.offset,
				Viewport:    800,
				TotalExtent: 10_000,
				HasMore:     true,
			})
			if fired != tc.want {
				t.Fatalf("offset=%d: fired = %v, want %v", tc.offset, fired, tc.want)
			}
		})
	}
}

func TestLoaderPhaseWalk(t *testing.T) {
	fired := 0
	l := NewLoader(200, func() { fired++ })
	inside := func(fetching bool) PagingSignals {
		return PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true, IsFetchingMore: fetching}
	}

	if !l.Observe(inside(false)) {
		t.Fatalf("expected trigger on first crossing")
	}
	if got := l.Phase(); got != LoadPending {
		t.Fatalf("phase = %v, want pending", got)
	}
	if !l.Active() {
		t.Fatalf("Active should be true while pending")
	}

	// Caller acknowledges.
	l.Observe(inside(true))
	if got := l.Phase(); got != LoadFetching {
		t.Fatalf("phase = %v, want fetching", got)
	}
	if fired != 1 {
		t.Fatalf("fetch fired %d times before completion, want 1", fired)
	}

	// Page load finished (success or failure): the latch clears, and a
	// still-crossed threshold re-triggers in the same observation. This
	// is both the short-page chaining path and the retry path after a
	// failed page load.
	if !l.Observe(inside(false)) {
		t.Fatalf("expected re-trigger on completion inside threshold")
	}
	if fired != 2 {
		t.Fatalf("fetch fired %d times, want 2", fired)
	}
	if got := l.Phase(); got != LoadPending {
		t.Fatalf("phase = %v, want pending", got)
	}
}

func TestLoaderCompletionOutsideThresholdGoesIdle(t *testing.T) {
	fired := 0
	l := NewLoader(200, func() { fired++ })

	if !l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true}) {
		t.Fatalf("expected trigger on crossing")
	}
	l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true, IsFetchingMore: true})

	// The appended page pushed the end far enough away, so completion
	// releases the latch without re-triggering.
	if l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 20_000, HasMore: true}) {
		t.Fatalf("fetch fired with the threshold no longer crossed")
	}
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("phase = %v, want idle", got)
	}
	if fired != 1 {
		t.Fatalf("fetch fired %d times, want 1", fired)
	}
}

func TestLoaderFetchCompletesBetweenObservations(t *testing.T) {
	// The host starts the fetch synchronously inside the fire callback
	// and the page can complete before the next observation, so the
	// in-flight flag is never seen true. The loader must not stay
	// latched in pending.
	calls := 0
	extent := 10_000
	l := NewLoader(200, func() { calls++ })

	near := func(fetching bool) PagingSignals {
		return PagingSignals{Offset: extent - 900, Viewport: 800, TotalExtent: extent, HasMore: true, IsFetchingMore: fetching}
	}

	if !l.Observe(near(false)) {
		t.Fatalf("expected trigger on first crossing")
	}
	l.Ack()
	if got := l.Phase(); got != LoadFetching {
		t.Fatalf("phase after Ack = %v, want fetching", got)
	}

	// Page appended and the flag already dropped; this observation is
	// the first since the fire, and it lands outside the threshold.
	fireOffset := extent - 900
	extent += 10_000
	if l.Observe(PagingSignals{Offset: fireOffset, Viewport: 800, TotalExtent: extent, HasMore: true}) {
		t.Fatalf("unexpected fetch outside threshold")
	}
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("phase after completion = %v, want idle", got)
	}

	// Scrolling back into the threshold must fire again.
	for i := 0; i < 25 && calls < 2; i++ {
		l.Observe(near(false))
	}
	if calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", calls)
	}
}

func TestLoaderUnackedFireDoesNotWedge(t *testing.T) {
	// Same sequence without Ack: the pending latch still releases on the
	// completion observation instead of holding forever.
	calls := 0
	l := NewLoader(200, func() { calls++ })
	inside := PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true}

	if !l.Observe(inside) {
		t.Fatalf("expected trigger on crossing")
	}
	for i := 0; i < 25 && calls < 2; i++ {
		l.Observe(inside)
	}
	if calls < 2 {
		t.Fatalf("fetch calls = %d, want a re-trigger after the unobserved completion", calls)
	}
}

func TestLoaderAckOnlyAppliesWhilePending(t *testing.T) {
	l := NewLoader(200, func() {})
	l.Ack()
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("Ack while idle moved phase to %v", got)
	}
}

func TestLoaderRespectsHasMore(t *testing.T) {
	l := NewLoader(200, func() { t.Fatalf("fetch must not fire when hasMore is false") })
	for i := 0; i < 10; i++ {
		l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: false})
	}
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("phase = %v, want idle", got)
	}
}

func TestLoaderBlockedByForeignFetch(t *testing.T) {
	// An in-flight fetch the loader did not start (e.g. the initial page
	// load) still suppresses triggering.
	fired := false
	l := NewLoader(200, func() { fired = true })
	l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true, IsFetchingMore: true})
	if fired {
		t.Fatalf("fetch fired while a foreign fetch was in flight")
	}
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("phase = %v, want idle", got)
	}
}

func TestLoaderShortContent(t *testing.T) {
	// Content smaller than the viewport is always inside the threshold:
	// the loader keeps fetching until the viewport fills or hasMore drops.
	fired := false
	l := NewLoader(100, func() { fired = true })
	l.Observe(PagingSignals{Offset: 0, Viewport: 800, TotalExtent: 200, HasMore: true})
	if !fired {
		t.Fatalf("expected fetch for under-filled viewport")
	}
}

func TestLoaderReset(t *testing.T) {
	l := NewLoader(200, func() {})
	l.Observe(PagingSignals{Offset: 9_900, Viewport: 800, TotalExtent: 10_000, HasMore: true})
	if got := l.Phase(); got != LoadPending {
		t.Fatalf("phase = %v, want pending", got)
	}
	l.Reset()
	if got := l.Phase(); got != LoadIdle {
		t.Fatalf("phase after Reset = %v, want idle", got)
	}
}

func TestLoadPhaseString(t *testing.T) {
	cases := map[LoadPhase]string{
		LoadIdle:     "idle",
		LoadPending:  "pending",
		LoadFetching: "fetching",
		LoadPhase(9): "unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Fatalf("LoadPhase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
