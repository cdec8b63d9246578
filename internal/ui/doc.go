// Package ui provides the terminal user interface for invoiceview.
//
// # Architecture Overview
//
// The UI is a bubbletea program in the Elm style. A single Model value holds
// all state, Update handles every message, and View renders the whole frame
// from scratch. The invoice list itself is virtualized through the vlist
// engine, so only the rows inside the current window are ever rendered no
// matter how long the list grows.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - ui.go: Options validation and the Run entry point
//   - model.go: The Model struct, Init, Update, and message handling
//   - view.go: Frame composition for the list, header, and footer
//   - rows.go: Per-invoice row rendering and height measurement
//   - detail.go: The invoice detail pane backed by a bubbles viewport
//   - keys.go: Key bindings in the bubbles/key style
//   - theme.go: Color palette and prebuilt lipgloss styles
//   - helpers.go: Amount formatting and width-aware text utilities
//
// # Virtualization
//
// The Model owns a vlist.List keyed by pixel offset in display lines. On
// every resize or scroll the engine recomputes the visible window, and View
// composites exactly listHeight lines by placing each visible row at its
// measured top. In dynamic-height mode, Update measures visible rows with
// rowHeight and feeds the results into the engine's height registry before
// View runs, so reads and writes never interleave inside a frame.
//
// # Data Flow
//
//  1. Run validates Options, builds the Model, and starts the program.
//  2. Init issues the first page fetch and the spinner tick.
//  3. fetchCmd latches the store, calls the API off the event loop, and
//     delivers a pageLoadedMsg.
//  4. handlePageLoaded snapshots the store, rebuilds the engine's items,
//     and asks the infinite-scroll coordinator whether to fetch again.
//  5. Scroll and key events adjust the engine offset; the engine's
//     debounced scrolling observer reports transitions back into the
//     event loop as scrollStateMsg values.
//
// # External Dependencies
//
//   - vlist: windowing, scroll tracking, and load-more coordination
//   - state.Store: accumulated invoice pages and fetch status
//   - api.Client: the invoice list transport
package ui
