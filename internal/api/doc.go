// Package api provides the HTTP client for the invoice backend, plus an
// in-process demo server for running without one.
//
// # Overview
//
// The UI never talks HTTP directly; it consumes InvoiceLister, a single
// paged-query interface. *Client implements it against a real backend,
// and the demo server implements the same wire contract in memory so the
// binary works standalone (and so client tests have a real server to hit
// via httptest).
//
// # Files
//
//   - client.go: HTTP client, request building, JSON decoding
//   - types.go: Invoice, PageQuery, and Page wire types
//   - demo.go: deterministic in-memory dataset behind a gorilla/mux router
//
// # Paging Contract
//
// GET /api/invoices?offset=N&limit=M&q=search returns:
//
//	{"items": [...], "total": 1234, "hasMore": true}
//
// hasMore is authoritative: the UI's infinite-scroll coordinator stops
// requesting pages once it reports false. Offsets past the end of the
// dataset return an empty terminal page, not an error, so a shrinking
// result set cannot wedge the pager.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, and treat any status >= 400 as an error. Errors are wrapped with
// fmt.Errorf("...: %w", err) so callers can inspect causes while logs stay
// readable.
package api
