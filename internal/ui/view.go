package ui

import (
	"fmt"
	"strings"
)

// View renders the full frame: header, list body (or an overlay), then the
// footer and optional search input.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp()
	case m.showDetail:
		body = m.renderDetail()
	default:
		body = m.renderListBody()
	}

	sections := []string{m.renderHeader(), body, m.renderFooter()}
	if m.searching {
		sections = append(sections, m.search.View())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("invoiceview")

	count := fmt.Sprintf("%d invoices", m.snapshot.Total)
	if m.list != nil && m.list.Len() < m.snapshot.Total {
		count = fmt.Sprintf("%d of %d invoices", m.list.Len(), m.snapshot.Total)
	}
	parts := []string{title, m.styles.MutedText.Render(count)}

	if m.showDetail {
		parts = append(parts, m.styles.Text.Render(m.detailTitle()))
	}
	if m.activeQuery != "" {
		parts = append(parts, m.styles.InfoText.Render("search: "+m.activeQuery))
	}
	if m.snapshot.IsOffline() {
		parts = append(parts, m.styles.DangerText.Render("OFFLINE"))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, m.styles.WarningText.Render("fetch failed, scroll to retry"))
	}
	return truncate(strings.Join(parts, "  "), m.width)
}

// renderListBody composites the windowed rows into exactly viewport lines.
// Rows are placed by their absolute top minus the scroll offset; overscan
// rows outside the viewport simply contribute no lines.
func (m Model) renderListBody() string {
	height := m.listHeight()
	lines := make([]string, height)

	if m.list == nil || m.list.Len() == 0 {
		empty := "No invoices"
		if m.snapshot.IsFetchingMore {
			empty = m.spin.View() + " Loading invoices…"
		} else if m.activeQuery != "" {
			empty = "No invoices match " + m.activeQuery
		}
		if height > 0 {
			lines[0] = m.styles.MutedText.Render(empty)
		}
		return strings.Join(lines, "\n")
	}

	offset := m.list.Offset()
	for _, row := range m.list.Visible() {
		rendered := m.renderInvoiceLines(row.Item, m.width, row.Index == m.selected)
		for j := 0; j < row.Height; j++ {
			pos := row.Top + j - offset
			if pos < 0 || pos >= height {
				continue
			}
			if j < len(rendered) {
				lines[pos] = rendered[j]
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var parts []string

	if m.list != nil && m.list.Len() > 0 {
		parts = append(parts,
			fmt.Sprintf("%d/%d", m.selected+1, m.list.Len()),
			fmt.Sprintf("%d%%", scrollPercent(m.list.Offset(), m.list.TotalExtent(), m.list.Viewport())))
	}
	if m.loader.Active() || m.snapshot.IsFetchingMore {
		parts = append(parts, m.spin.View()+" loading more")
	}
	if m.list != nil && m.list.IsScrolling() {
		parts = append(parts, "scrolling")
	}

	var hints []string
	for _, binding := range m.keys.ShortHelp() {
		hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
	}
	parts = append(parts, strings.Join(hints, " · "))

	return truncate(m.styles.Footer.Render(strings.Join(parts, "  ·  ")), m.width)
}

func (m Model) renderHelp() string {
	height := m.listHeight()
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Key Bindings"))
	b.WriteString("\n\n")
	used := 2
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			if used >= height {
				break
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.AccentText.Render(padRight(binding.Help().Key, 10)),
				m.styles.Text.Render(binding.Help().Desc)))
			used++
		}
	}
	for ; used < height; used++ {
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
