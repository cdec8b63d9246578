package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunables invoiceview reads at startup.
type Config struct {
	APIBind           string
	PageSize          int
	Overscan          int
	ItemHeight        int
	DynamicHeights    bool
	LoadMoreThreshold int
	ScrollDebounce    time.Duration
}

const (
	defaultConfigPath = "~/.config/invoiceview/config.toml"
	defaultAPIBind    = "127.0.0.1:8590"

	defaultPageSize          = 50
	defaultOverscan          = 5
	defaultItemHeight        = 2
	defaultLoadMoreThreshold = 10
	defaultScrollDebounceMS  = 150

	maxPageSize = 500
	maxOverscan = 50
)

// Load locates and parses the config file, falling back to defaults when
// missing. Out-of-range values are clamped rather than rejected; a missing
// file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind           string `toml:"api_bind"`
		PageSize          int    `toml:"page_size"`
		Overscan          int    `toml:"overscan"`
		ItemHeight        int    `toml:"item_height"`
		DynamicHeights    bool   `toml:"dynamic_heights"`
		LoadMoreThreshold int    `toml:"load_more_threshold"`
		ScrollDebounceMS  int    `toml:"scroll_debounce_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if raw.PageSize > 0 {
		cfg.PageSize = min(raw.PageSize, maxPageSize)
	}
	if raw.Overscan > 0 {
		cfg.Overscan = min(raw.Overscan, maxOverscan)
	}
	if raw.ItemHeight > 0 {
		cfg.ItemHeight = raw.ItemHeight
	}
	cfg.DynamicHeights = raw.DynamicHeights
	if raw.LoadMoreThreshold > 0 {
		cfg.LoadMoreThreshold = raw.LoadMoreThreshold
	}
	if raw.ScrollDebounceMS > 0 {
		cfg.ScrollDebounce = time.Duration(raw.ScrollDebounceMS) * time.Millisecond
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBind:           defaultAPIBind,
		PageSize:          defaultPageSize,
		Overscan:          defaultOverscan,
		ItemHeight:        defaultItemHeight,
		LoadMoreThreshold: defaultLoadMoreThreshold,
		ScrollDebounce:    defaultScrollDebounceMS * time.Millisecond,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
