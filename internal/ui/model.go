package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmxmy/invoiceview/internal/api"
	"github.com/vmxmy/invoiceview/internal/config"
	"github.com/vmxmy/invoiceview/internal/state"
	"github.com/vmxmy/invoiceview/internal/vlist"
)

// pageLoadedMsg signals that a fetch command finished and the store holds
// its outcome.
type pageLoadedMsg struct{}

// scrollStateMsg carries IsScrolling transitions from the engine's debounce
// timer into the update loop.
type scrollStateMsg bool

const chromeHeight = 2 // header + footer

// Model is the bubbletea model for the invoice browser.
type Model struct {
	ctx    context.Context
	client api.InvoiceLister
	store  *state.Store
	cfg    config.Config

	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	ready  bool

	list           *vlist.List[api.Invoice]
	loader         *vlist.Loader
	dynamicHeights bool
	selected       int

	snapshot state.Snapshot

	spin        spinner.Model
	search      textinput.Model
	searching   bool
	activeQuery string

	detail     viewport.Model
	showDetail bool
	showHelp   bool

	// notify forwards IsScrolling transitions from the engine's timer
	// goroutine into the program's message loop.
	notify func(bool)

	// onThemeChanged persists the user's theme choice. May be nil.
	onThemeChanged func(name string)
}

// newModel assembles the model; the engine's scroll observer is wired
// separately once the program exists (see Run).
func newModel(opts Options) Model {
	theme := ThemeByName(opts.ThemeName)

	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = theme.Styles().InfoText

	search := textinput.New()
	search.Placeholder = "seller or invoice number"
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		ctx:            opts.Context,
		client:         opts.Client,
		store:          opts.Store,
		cfg:            opts.Config,
		keys:           DefaultKeyMap(),
		theme:          theme,
		styles:         theme.Styles(),
		dynamicHeights: opts.Config.DynamicHeights,
		loader:         vlist.NewLoader(opts.Config.LoadMoreThreshold, nil),
		spin:           spin,
		search:         search,
		onThemeChanged: opts.OnThemeChanged,
	}
}

// Init kicks off the first page load and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spin.Tick)
}

// Update routes messages. All engine mutation happens here, on the single
// update goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case pageLoadedMsg:
		return m.handlePageLoaded()
	case scrollStateMsg:
		// The debounce edge only needs a re-render; View reads
		// IsScrolling directly.
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if m.list == nil {
		m.rebuildList(nil)
	}
	m.list.SetViewport(m.listHeight())
	m.detail = viewport.New(m.width, m.listHeight())
	if m.showDetail {
		m.refreshDetail()
	}
	m.measureVisible()
	m.ready = true
	return m, m.observeLoader()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.showDetail:
			m.showDetail = false
		case m.activeQuery != "":
			return m.applyQuery("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.activeQuery)
		if m.list != nil {
			m.list.SetViewport(m.listHeight())
		}
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Refresh):
		return m.applyQuery(m.activeQuery)

	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		m.styles = m.theme.Styles()
		m.spin.Style = m.styles.InfoText
		if m.onThemeChanged != nil {
			m.onThemeChanged(m.theme.Name)
		}
		if m.showDetail {
			m.refreshDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		if m.selectedInvoice() != nil {
			m.showDetail = true
			m.refreshDetail()
		}
		return m, nil
	}

	if m.showDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if m.list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.list.ScrollToTop()
		return m, m.observeLoader()
	case key.Matches(msg, m.keys.Bottom):
		m.selected = m.list.Len() - 1
		m.list.ScrollToIndex(m.selected)
		return m, m.observeLoader()
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.listHeight())
	case key.Matches(msg, m.keys.HalfPageUp):
		return m.scrollBy(-m.listHeight() / 2)
	case key.Matches(msg, m.keys.HalfPageDown):
		return m.scrollBy(m.listHeight() / 2)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m.applyQuery(m.search.Value())
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		if m.list != nil {
			m.list.SetViewport(m.listHeight())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.list == nil || m.showDetail || m.showHelp {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-3)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(3)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		// Header occupies the first line; hit-test the list area.
		y := m.list.Offset() + msg.Y - 1
		if idx, ok := m.list.ItemAt(y); ok {
			m.selected = idx
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handlePageLoaded() (tea.Model, tea.Cmd) {
	m.snapshot = m.store.Snapshot()
	m.rebuildItems()
	// Feed the loader the post-append geometry: short pages chain until
	// the viewport fills or the server reports the end.
	return m, m.observeLoader()
}

// moveSelection shifts the cursor and scrolls just enough to keep it in
// view.
func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	n := m.list.Len()
	if n == 0 {
		return m, nil
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}

	top, height := m.list.ItemSpan(m.selected)
	offset := m.list.Offset()
	viewport := m.listHeight()
	if top < offset {
		m.list.OnScroll(top)
	} else if top+height > offset+viewport {
		m.list.OnScroll(top + height - viewport)
	}
	if m.showDetail {
		m.refreshDetail()
	}
	m.measureVisible()
	return m, m.observeLoader()
}

func (m Model) scrollBy(delta int) (tea.Model, tea.Cmd) {
	m.list.ScrollBy(delta)
	m.measureVisible()
	return m, m.observeLoader()
}

// applyQuery resets paging state for a new search (or a manual reload) and
// fetches the first page.
func (m Model) applyQuery(query string) (tea.Model, tea.Cmd) {
	m.activeQuery = query
	m.selected = 0
	m.showDetail = false
	m.store.Reset()
	m.loader.Reset()
	m.snapshot = m.store.Snapshot()
	m.rebuildList(nil)
	return m, tea.Batch(m.fetchCmd(), m.spin.Tick)
}

// fetchCmd starts one page request. The store's latch collapses duplicate
// triggers; the command runs off the update goroutine and reports back via
// pageLoadedMsg.
func (m Model) fetchCmd() tea.Cmd {
	if !m.store.BeginFetch() {
		return nil
	}
	offset := m.store.Len()
	query := api.PageQuery{Offset: offset, Limit: m.cfg.PageSize, Search: m.activeQuery}
	client, store, ctx := m.client, m.store, m.ctx
	return func() tea.Msg {
		page, err := client.ListInvoices(ctx, query)
		store.EndFetch(page, err)
		return pageLoadedMsg{}
	}
}

// observeLoader feeds current scroll geometry and paging signals through
// the coordinator, returning a fetch command when a threshold crossing
// fires.
func (m Model) observeLoader() tea.Cmd {
	if m.list == nil {
		return nil
	}
	snap := m.store.Snapshot()
	fired := m.loader.Observe(vlist.PagingSignals{
		Offset:         m.list.Offset(),
		Viewport:       m.list.Viewport(),
		TotalExtent:    m.list.TotalExtent(),
		HasMore:        snap.HasMore,
		IsFetchingMore: snap.IsFetchingMore,
	})
	if !fired {
		return nil
	}
	cmd := m.fetchCmd()
	if cmd == nil {
		return nil
	}
	// BeginFetch succeeded synchronously, so the in-flight flag may rise
	// and fall again before the next observation. Acknowledge now so the
	// latch releases on the completion snapshot regardless.
	m.loader.Ack()
	return tea.Batch(cmd, m.spin.Tick)
}

// rebuildItems pushes the latest snapshot into the engine, keeping the
// selection clamped.
func (m *Model) rebuildItems() {
	if m.list == nil {
		m.rebuildList(m.snapshot.Invoices)
	} else {
		m.list.SetItems(m.snapshot.Invoices)
	}
	if n := m.list.Len(); m.selected >= n && n > 0 {
		m.selected = n - 1
	}
	m.measureVisible()
}

// rebuildList constructs a fresh engine instance for a new item sequence.
func (m *Model) rebuildList(items []api.Invoice) {
	if m.list != nil {
		m.list.Close()
	}
	m.list = vlist.NewList(items, vlist.Config{
		ItemHeight:         m.cfg.ItemHeight,
		DynamicHeights:     m.dynamicHeights,
		DefaultHeight:      m.cfg.ItemHeight,
		Viewport:           m.listHeight(),
		Overscan:           m.cfg.Overscan,
		Debounce:           m.cfg.ScrollDebounce,
		OnScrollingChanged: m.notify,
	})
}

// measureVisible records rendered heights for the windowed rows in dynamic
// mode. Measurement happens here, before View runs, so reads never
// interleave with layout writes.
func (m *Model) measureVisible() {
	if !m.dynamicHeights || m.list == nil || m.width == 0 {
		return
	}
	for _, row := range m.list.Visible() {
		if h := m.rowHeight(row.Item, m.width); h != row.Height {
			m.list.RecordHeight(row.Index, h)
		}
	}
}

func (m Model) listHeight() int {
	h := m.height - chromeHeight
	if m.searching {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) selectedInvoice() *api.Invoice {
	if m.list == nil || m.selected < 0 || m.selected >= len(m.snapshot.Invoices) {
		return nil
	}
	inv := m.snapshot.Invoices[m.selected]
	return &inv
}

func (m Model) teardown() {
	if m.list != nil {
		m.list.Close()
	}
}
