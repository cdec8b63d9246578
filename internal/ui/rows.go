package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vmxmy/invoiceview/internal/api"
)

// row column budget, in display cells.
const (
	numberColWidth = 12
	amountColWidth = 14
	dateColWidth   = 10
	rowIndent      = 2
)

// renderInvoiceLines renders one invoice as display lines. Line one carries
// number, seller, and amount; line two date and status. In dynamic-height
// mode the note lines follow, so the returned length is the row's measured
// height.
func (m Model) renderInvoiceLines(inv api.Invoice, width int, selected bool) []string {
	if width < 20 {
		width = 20
	}
	styles := m.styles
	sellerWidth := width - numberColWidth - amountColWidth - 2*rowIndent
	if sellerWidth < 8 {
		sellerWidth = 8
	}

	marker := "  "
	if selected {
		marker = "▌ "
	}

	number := padRight(inv.InvoiceNumber, numberColWidth)
	seller := padRight(inv.SellerName, sellerWidth)
	amount := fmt.Sprintf("%*s", amountColWidth, truncate(formatAmount(inv.AmountCents, inv.Currency), amountColWidth))

	first := marker + styles.AccentText.Render(number) + " " + styles.Text.Render(seller) + styles.Text.Render(amount)

	date := padRight(inv.IssuedAt, dateColWidth)
	status := m.theme.StatusStyle(inv.Status).Render(inv.Status)
	second := strings.Repeat(" ", rowIndent+numberColWidth-dateColWidth) +
		styles.FaintText.Render(date) + "  " + status

	lines := []string{first, second}
	if m.dynamicHeights {
		for _, note := range inv.NoteLines() {
			lines = append(lines, strings.Repeat(" ", rowIndent*2)+
				styles.MutedText.Render(truncate(note, width-rowIndent*2)))
		}
	}
	if selected {
		for i, line := range lines {
			lines[i] = styles.Selected.Render(stripToWidth(line, width))
		}
	}
	return lines
}

// stripToWidth pads a styled line with plain spaces so selection background
// spans the full row width. Styled segments keep their own widths; only the
// tail is padded, using the unstyled cell count as an approximation.
func stripToWidth(line string, width int) string {
	plain := visibleWidth(line)
	if plain < width {
		return line + strings.Repeat(" ", width-plain)
	}
	return line
}

// visibleWidth measures the display width of a line, skipping ANSI escape
// sequences.
func visibleWidth(line string) int {
	width := 0
	inEscape := false
	for _, r := range line {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width += runewidth.RuneWidth(r)
		}
	}
	return width
}

// rowHeight measures how many lines an invoice occupies at the given width,
// the measurement fed into the engine's height registry in dynamic mode.
func (m Model) rowHeight(inv api.Invoice, width int) int {
	return len(m.renderInvoiceLines(inv, width, false))
}
