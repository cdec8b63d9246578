package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmxmy/invoiceview/internal/api"
	"github.com/vmxmy/invoiceview/internal/config"
	"github.com/vmxmy/invoiceview/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context context.Context
	Client  api.InvoiceLister
	Store   *state.Store
	Config  config.Config
	// ThemeName selects the starting palette; unknown names fall back to
	// the dark theme.
	ThemeName string
	// OnThemeChanged is called when the user toggles the theme at
	// runtime, so the choice can be persisted. May be nil.
	OnThemeChanged func(name string)
}

// Run starts the bubbletea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Client == nil {
		return fmt.Errorf("ui requires an invoice client")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	m := newModel(opts)

	// The engine's debounce timer fires on its own goroutine; route its
	// transitions into the update loop as messages. The program pointer
	// is assigned before Run starts processing events, and the timer
	// cannot fire before the first scroll event inside Run.
	var program *tea.Program
	m.notify = func(on bool) {
		if program != nil {
			program.Send(scrollStateMsg(on))
		}
	}
	m.rebuildList(nil)

	program = tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(opts.Context),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
