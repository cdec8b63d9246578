package ui

import (
	"fmt"
	"strings"
)

// refreshDetail fills the detail viewport with the selected invoice. The
// pane reuses bubbles' viewport for its own internal scrolling; the main
// list engine is not involved here.
func (m *Model) refreshDetail() {
	inv := m.selectedInvoice()
	if inv == nil {
		m.detail.SetContent(m.styles.MutedText.Render("Select an invoice to view details"))
		return
	}

	label := func(s string) string { return m.styles.MutedText.Render(padRight(s, 16)) }
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(inv.InvoiceNumber))
	b.WriteString("\n\n")
	b.WriteString(label("Seller") + m.styles.Text.Render(inv.SellerName) + "\n")
	b.WriteString(label("Buyer") + m.styles.Text.Render(inv.BuyerName) + "\n")
	b.WriteString(label("Amount") + m.styles.Text.Render(formatAmount(inv.AmountCents, inv.Currency)) + "\n")
	b.WriteString(label("Status") + m.theme.StatusStyle(inv.Status).Render(inv.Status) + "\n")
	b.WriteString(label("Issued") + m.styles.Text.Render(inv.IssuedAt) + "\n")
	b.WriteString(label("ID") + m.styles.FaintText.Render(inv.ID.String()) + "\n")

	if lines := inv.NoteLines(); len(lines) > 0 {
		b.WriteString("\n" + m.styles.MutedText.Render("Notes") + "\n")
		for _, line := range lines {
			b.WriteString("  " + m.styles.Text.Render(line) + "\n")
		}
	}

	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

func (m Model) renderDetail() string {
	return m.detail.View()
}

// Invoice detail title for the header line while the pane is open.
func (m Model) detailTitle() string {
	if inv := m.selectedInvoice(); inv != nil {
		return fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	return "Invoice"
}
