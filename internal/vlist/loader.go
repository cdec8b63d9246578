package vlist

// LoadPhase enumerates the infinite-scroll coordinator's states.
type LoadPhase int

const (
	// LoadIdle means no fetch is pending and the threshold has not been
	// crossed since the last page completed.
	LoadIdle LoadPhase = iota
	// LoadPending means a fetch was requested and the caller has not yet
	// acknowledged it, either via Ack or an observed
	// IsFetchingMore == true.
	LoadPending
	// LoadFetching means the caller acknowledged the request and a page
	// load is in flight.
	LoadFetching
)

// String returns the phase name for logs and tests.
func (p LoadPhase) String() string {
	switch p {
	case LoadIdle:
		return "idle"
	case LoadPending:
		return "pending"
	case LoadFetching:
		return "fetching"
	default:
		return "unknown"
	}
}

// PagingSignals is the per-event snapshot the coordinator observes. Offset,
// Viewport, and TotalExtent describe scroll geometry; HasMore and
// IsFetchingMore are caller-supplied paging state.
type PagingSignals struct {
	Offset         int
	Viewport       int
	TotalExtent    int
	HasMore        bool
	IsFetchingMore bool
}

// Loader watches proximity-to-end and triggers a caller-supplied fetch once
// per threshold crossing. The latch set on firing holds while the caller
// reports IsFetchingMore true, so a burst of scroll events inside the
// threshold issues a single request. Observing IsFetchingMore false releases
// the latch: a completed (or failed) page load re-arms the trigger in the
// same observation, so short pages chain until the viewport fills. Callers
// that start the fetch synchronously at fire time should Ack so the latch
// survives even when the in-flight flag clears before the next observation.
type Loader struct {
	threshold int
	fetch     func()
	phase     LoadPhase
}

// NewLoader builds a coordinator that calls fetch when the remaining
// scrollable distance drops below threshold rows. Negative thresholds clamp
// to zero; a nil fetch leaves the state machine functional but silent.
func NewLoader(threshold int, fetch func()) *Loader {
	if threshold < 0 {
		threshold = 0
	}
	return &Loader{threshold: threshold, fetch: fetch}
}

// Observe feeds one scroll/paging snapshot through the state machine and
// reports whether a fetch was triggered by this call.
func (l *Loader) Observe(sig PagingSignals) bool {
	switch l.phase {
	case LoadPending:
		if sig.IsFetchingMore {
			l.phase = LoadFetching
			return false
		}
		// No fetch in flight: either the request never started or the
		// page already completed without being observed mid-flight.
		// Release the latch and fall through, so a completed page can
		// chain immediately instead of waiting for another event.
		l.phase = LoadIdle
	case LoadFetching:
		if sig.IsFetchingMore {
			return false
		}
		// Page load finished. Fall through so a still-crossed
		// threshold re-triggers in this same observation.
		l.phase = LoadIdle
	}

	// Idle. A fetch already in flight (started by someone else, e.g. an
	// initial page load) still blocks triggering.
	if !sig.HasMore || sig.IsFetchingMore {
		return false
	}
	remaining := sig.TotalExtent - sig.Offset - sig.Viewport
	if remaining >= l.threshold {
		return false
	}
	l.phase = LoadPending
	if l.fetch != nil {
		l.fetch()
	}
	return true
}

// Ack marks the pending request as started, for callers that begin the
// fetch synchronously at fire time. Without it, a fetch that starts and
// completes between two observations is never seen in flight and the
// release would depend on the next observation's geometry.
func (l *Loader) Ack() {
	if l.phase == LoadPending {
		l.phase = LoadFetching
	}
}

// Phase returns the current coordinator state.
func (l *Loader) Phase() LoadPhase { return l.phase }

// Active reports whether a page request is pending or in flight, the signal
// hosts use to show a load-more affordance.
func (l *Loader) Active() bool { return l.phase != LoadIdle }

// Reset forces the coordinator back to idle. Hosts call this when the item
// sequence is replaced wholesale (e.g. a new query), discarding any latch
// tied to the old sequence.
func (l *Loader) Reset() { l.phase = LoadIdle }
