package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vmxmy/invoiceview/internal/api"
)

func page(ids ...string) api.Page {
	items := make([]api.Invoice, len(ids))
	for i, id := range ids {
		items[i] = api.Invoice{InvoiceNumber: id}
	}
	return api.Page{Items: items, Total: len(ids), HasMore: true}
}

func TestStore_AppendAndSnapshotClone(t *testing.T) {
	var s Store

	if !s.BeginFetch() {
		t.Fatal("BeginFetch on idle store = false, want true")
	}
	before := time.Now()
	s.EndFetch(page("INV-1", "INV-2"), nil)

	snap := s.Snapshot()
	if len(snap.Invoices) != 2 || snap.Invoices[0].InvoiceNumber != "INV-1" {
		t.Fatalf("snapshot invoices = %#v, want 2 items", snap.Invoices)
	}
	if snap.IsFetchingMore {
		t.Fatal("IsFetchingMore = true after EndFetch")
	}
	if !snap.HasMore {
		t.Fatal("HasMore = false, want page value true")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Invoices[0].InvoiceNumber = "mutated"
	snap2 := s.Snapshot()
	if snap2.Invoices[0].InvoiceNumber != "INV-1" {
		t.Fatalf("Snapshot should clone invoices; got %q want INV-1", snap2.Invoices[0].InvoiceNumber)
	}
}

func TestStore_PagesAccumulate(t *testing.T) {
	var s Store

	s.BeginFetch()
	s.EndFetch(api.Page{Items: page("a", "b").Items, Total: 3, HasMore: true}, nil)
	s.BeginFetch()
	s.EndFetch(api.Page{Items: page("c").Items, Total: 3, HasMore: false}, nil)

	snap := s.Snapshot()
	if len(snap.Invoices) != 3 {
		t.Fatalf("accumulated %d invoices, want 3", len(snap.Invoices))
	}
	if snap.HasMore {
		t.Fatal("HasMore = true after terminal page")
	}
	if snap.Total != 3 {
		t.Fatalf("Total = %d, want 3", snap.Total)
	}
}

func TestStore_BeginFetchLatch(t *testing.T) {
	var s Store

	if !s.BeginFetch() {
		t.Fatal("first BeginFetch = false, want true")
	}
	if s.BeginFetch() {
		t.Fatal("second BeginFetch = true, want false while in flight")
	}
	s.EndFetch(page(), nil)
	if !s.BeginFetch() {
		t.Fatal("BeginFetch after EndFetch = false, want true")
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.BeginFetch()
	s.EndFetch(page("INV-1"), nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.BeginFetch()
	s.EndFetch(api.Page{}, origErr)

	snap := s.Snapshot()
	if len(snap.Invoices) != len(prev.Invoices) {
		t.Fatalf("invoices changed on error: got %d want %d", len(snap.Invoices), len(prev.Invoices))
	}
	if !snap.HasMore {
		t.Fatal("HasMore dropped on error; retries would be blocked")
	}
	if snap.IsFetchingMore {
		t.Fatal("IsFetchingMore = true after failed fetch")
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.BeginFetch()
	s.EndFetch(api.Page{}, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v, want 1/false",
			snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.BeginFetch()
	s.EndFetch(api.Page{}, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v, want 2/true",
			snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.BeginFetch()
	s.EndFetch(page("INV-1"), nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: failures=%d offline=%v, want 0/false",
			snap.ConsecutiveFailures, snap.IsOffline())
	}
}

func TestStore_Reset(t *testing.T) {
	var s Store

	s.BeginFetch()
	s.EndFetch(api.Page{Items: page("a", "b").Items, Total: 2, HasMore: false}, nil)
	s.Reset()

	snap := s.Snapshot()
	if len(snap.Invoices) != 0 {
		t.Fatalf("Reset left %d invoices", len(snap.Invoices))
	}
	if !snap.HasMore {
		t.Fatal("Reset should re-arm HasMore for the next query")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}
