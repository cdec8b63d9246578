// Package app provides the orchestration layer for invoiceview.
//
// # Overview
//
// This package wires together configuration, the API client, state
// management, and the UI to create the complete invoiceview TUI. It serves
// as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/invoiceview/config.toml
//  2. Optionally start the in-process demo backend (demo mode)
//  3. Initialize the HTTP client for the invoice API
//  4. Verify the backend is reachable before starting the UI
//  5. Create the shared state.Store and arm it for the first fetch
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Main Run function and the backend availability check
//   - demo.go: Loopback HTTP server that serves the deterministic demo
//     dataset, used by the -demo flag and by tests
//
// # Fetching Model
//
// Unlike a dashboard that polls on a timer, invoiceview fetches pages only
// when the UI asks for them. The first page loads at startup; subsequent
// pages load when the infinite-scroll coordinator inside the UI detects
// that the viewport is nearing the end of the loaded content. Fetch
// failures are recorded in the store and surfaced by the UI, so no
// background goroutine is needed here.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//
//   - Configuration file present but invalid
//   - Client initialization failure (malformed api_bind)
//   - Initial availability check failure (3 second timeout)
//
// Recoverable errors (recorded in state.Store, UI keeps running):
//
//   - Page fetch failures after startup
//   - Network timeouts while scrolling
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT)
//	defer cancel()
//
//	err := app.Run(ctx, app.Options{Demo: true})
package app
