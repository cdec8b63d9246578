package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.Overscan != defaultOverscan {
		t.Fatalf("Overscan = %d, want %d", cfg.Overscan, defaultOverscan)
	}
	if cfg.ScrollDebounce != defaultScrollDebounceMS*time.Millisecond {
		t.Fatalf("ScrollDebounce = %v, want %dms", cfg.ScrollDebounce, defaultScrollDebounceMS)
	}
	if cfg.DynamicHeights {
		t.Fatal("DynamicHeights should default to false")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_bind = "  10.0.0.5:9999  "
page_size = 25
overscan = 8
item_height = 3
dynamic_heights = true
load_more_threshold = 20
scroll_debounce_ms = 90
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != "10.0.0.5:9999" {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, "10.0.0.5:9999")
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize = %d, want 25", cfg.PageSize)
	}
	if cfg.Overscan != 8 {
		t.Fatalf("Overscan = %d, want 8", cfg.Overscan)
	}
	if cfg.ItemHeight != 3 {
		t.Fatalf("ItemHeight = %d, want 3", cfg.ItemHeight)
	}
	if !cfg.DynamicHeights {
		t.Fatal("DynamicHeights = false, want true")
	}
	if cfg.LoadMoreThreshold != 20 {
		t.Fatalf("LoadMoreThreshold = %d, want 20", cfg.LoadMoreThreshold)
	}
	if cfg.ScrollDebounce != 90*time.Millisecond {
		t.Fatalf("ScrollDebounce = %v, want 90ms", cfg.ScrollDebounce)
	}
}

func TestLoad_ClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
page_size = 100000
overscan = 9999
item_height = -4
scroll_debounce_ms = -10
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != maxPageSize {
		t.Fatalf("PageSize = %d, want clamped %d", cfg.PageSize, maxPageSize)
	}
	if cfg.Overscan != maxOverscan {
		t.Fatalf("Overscan = %d, want clamped %d", cfg.Overscan, maxOverscan)
	}
	if cfg.ItemHeight != defaultItemHeight {
		t.Fatalf("ItemHeight = %d, want default %d for non-positive input", cfg.ItemHeight, defaultItemHeight)
	}
	if cfg.ScrollDebounce != defaultScrollDebounceMS*time.Millisecond {
		t.Fatalf("ScrollDebounce = %v, want default for non-positive input", cfg.ScrollDebounce)
	}
}

func TestLoad_MalformedTOMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_bind = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}
