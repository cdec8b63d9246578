// Package state provides thread-safe paging state for the invoice browser.
//
// # Overview
//
// The Store is the coordination point between the fetch path (bubbletea
// commands running ListInvoices) and the UI render loop. It accumulates
// pages into one ordered invoice sequence and carries the two signals the
// infinite-scroll coordinator consumes: HasMore and IsFetchingMore.
//
// # Data Flow
//
//	Fetch command:                      UI loop:
//	┌──────────────────┐              ┌──────────────────┐
//	│ store.BeginFetch │              │                  │
//	│       ↓          │              │ store.Snapshot() │
//	│ ListInvoices()   │─────────────→│       ↓          │
//	│       ↓          │   (mutex)    │ render window    │
//	│ store.EndFetch   │              │                  │
//	└──────────────────┘              └──────────────────┘
//
// # Fetch Lifecycle
//
// BeginFetch flips IsFetchingMore and refuses re-entry, so a burst of
// triggers collapses into a single request. EndFetch always clears the
// flag:
//
//	// Success: append the page, adopt the server's hasMore
//	store.EndFetch(page, nil)
//
//	// Failure: keep existing data, record the error, leave HasMore set
//	store.EndFetch(api.Page{}, err)
//
// Leaving HasMore untouched on failure matters: the scroll coordinator
// re-arms when IsFetchingMore drops, so continued scrolling retries the
// failed page instead of wedging the list.
//
// # Concurrency Model
//
// A readers-writer lock with a single writer (the fetch path) and multiple
// readers. Snapshot returns defensive copies: the invoice slice is cloned
// and the error re-wrapped, so nothing the UI holds aliases store
// internals. Updates never happen during network I/O; the lock is held
// only while copying.
//
// # Offline Detection
//
// ConsecutiveFailures counts back-to-back failed fetches; IsOffline trips
// at two, which the UI surfaces in its footer. Any success resets the
// counter.
//
// The zero-value Store is ready to use; call Reset when the active query
// changes (e.g. a new search) to discard accumulated pages and re-arm
// paging.
package state
