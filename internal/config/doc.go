// Package config handles loading and parsing invoiceview's TOML
// configuration.
//
// # Overview
//
// This package reads the backend endpoint and the list-engine tunables
// (page size, overscan, row sizing, load-more threshold, scroll debounce)
// from a single TOML file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/invoiceview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:8590"
//	page_size = 50
//	overscan = 5
//	item_height = 2
//	dynamic_heights = false
//	load_more_threshold = 10
//	scroll_debounce_ms = 150
//
// All fields are optional. Tilde expansion is performed on the config
// path.
//
// # Normalization
//
// Out-of-range values are clamped rather than rejected: page_size caps at
// 500, overscan at 50, and non-positive values for any numeric field fall
// back to the default. The engine downstream clamps its inputs anyway;
// doing it here keeps logs quiet and the file forgiving.
//
// # Error Handling
//
// Load returns errors only for path expansion failures, unreadable files,
// and TOML parse errors. A missing config file is NOT an error - defaults
// let the binary work out of the box (especially with -demo).
//
// The package is read-only and stateless: configuration loads once at
// startup into an immutable Config struct.
package config
