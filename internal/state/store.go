package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/vmxmy/invoiceview/internal/api"
)

// Snapshot represents the latest paging state available to the UI.
type Snapshot struct {
	Invoices       []api.Invoice
	Total          int // server-reported total for the active query
	HasMore        bool
	IsFetchingMore bool
	LastUpdated    time.Time
	LastError      error
	// ConsecutiveFailures counts page fetches that failed back to back.
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple
// consecutive fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store accumulates fetched invoice pages and the paging signals derived
// from them. It is the coordination point between the fetch commands and UI
// rendering; a single writer (the fetch path) and any number of readers.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginFetch marks a page request in flight. It returns false when a fetch
// is already running, so concurrent triggers collapse into one request.
func (s *Store) BeginFetch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.IsFetchingMore {
		return false
	}
	s.snapshot.IsFetchingMore = true
	return true
}

// EndFetch records the outcome of the in-flight request. On success the
// page is appended and HasMore adopted from the server; on failure existing
// data is kept and the error recorded, leaving HasMore set so continued
// scrolling can retry.
func (s *Store) EndFetch(page api.Page, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.IsFetchingMore = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Invoices = append(s.snapshot.Invoices, page.Items...)
	s.snapshot.Total = page.Total
	s.snapshot.HasMore = page.HasMore
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Reset discards accumulated invoices, e.g. when the search query changes.
// The paging flags reset to "nothing fetched yet, more available".
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{HasMore: true}
}

// Len returns the number of accumulated invoices without copying them.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Invoices)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Invoices = cloneInvoices(s.snapshot.Invoices)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneInvoices(items []api.Invoice) []api.Invoice {
	if len(items) == 0 {
		return nil
	}
	dup := make([]api.Invoice, len(items))
	copy(dup, items)
	return dup
}
