package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vmxmy/invoiceview/internal/api"
	"github.com/vmxmy/invoiceview/internal/config"
	"github.com/vmxmy/invoiceview/internal/prefs"
	"github.com/vmxmy/invoiceview/internal/state"
	"github.com/vmxmy/invoiceview/internal/ui"
)

// Options configure the invoiceview application.
type Options struct {
	ConfigPath string
	// PrefsPath overrides the user preferences file; empty uses the default
	// ~/.config/invoiceview/prefs.toml.
	PrefsPath string
	// Demo serves a deterministic in-process invoice backend instead of
	// connecting to APIBind.
	Demo bool
	// DemoCount sets the demo backend's invoice count; zero uses a default.
	DemoCount int
	PageSize  int // overrides config.PageSize when positive
}

// Run boots the invoiceview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}

	bind := cfg.APIBind
	if opts.Demo {
		srv, err := startDemoServer(ctx, opts.DemoCount)
		if err != nil {
			return fmt.Errorf("start demo backend: %w", err)
		}
		defer srv.Close()
		bind = srv.Addr()
	}

	client, err := api.NewClient(bind)
	if err != nil {
		return fmt.Errorf("init invoice client: %w", err)
	}

	if !opts.Demo {
		if err := ensureBackendAvailable(ctx, client); err != nil {
			return err
		}
	}

	store := &state.Store{}
	store.Reset()

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		OnThemeChanged: func(name string) {
			_ = prefs.Save(opts.PrefsPath, prefs.Prefs{Theme: name})
		},
	}
	return ui.Run(uiOpts)
}

// ensureBackendAvailable fails fast when the invoice backend is not
// reachable, so the UI never starts against a dead endpoint.
func ensureBackendAvailable(ctx context.Context, client *api.Client) error {
	probe, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := client.ListInvoices(probe, api.PageQuery{Limit: 1}); err != nil {
		return fmt.Errorf("invoice backend unreachable: %w", err)
	}
	return nil
}
