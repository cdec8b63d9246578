package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invoice statuses as reported by the backend.
const (
	StatusUnreimbursed = "unreimbursed"
	StatusSubmitted    = "submitted"
	StatusReimbursed   = "reimbursed"
	StatusVoided       = "voided"
)

// Invoice describes one invoice in transport-friendly form.
type Invoice struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	SellerName    string    `json:"sellerName"`
	BuyerName     string    `json:"buyerName"`
	// AmountCents keeps currency math exact; display code formats it.
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	IssuedAt    string `json:"issuedAt"`
	Notes       string `json:"notes"`
}

// IssuedDate parses IssuedAt, returning the zero time for malformed or
// missing dates.
func (inv Invoice) IssuedDate() time.Time {
	raw := strings.TrimSpace(inv.IssuedAt)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// NoteLines splits the free-form notes field into display lines. Empty
// notes yield nil, so fixed-height rendering stays single-row.
func (inv Invoice) NoteLines() []string {
	trimmed := strings.TrimSpace(inv.Notes)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// PageQuery selects one slice of the invoice list.
type PageQuery struct {
	Offset int
	Limit  int
	// Search filters by seller name or invoice number when non-empty.
	Search string
}

// Page is the payload returned by /api/invoices.
type Page struct {
	Items   []Invoice `json:"items"`
	Total   int       `json:"total"`
	HasMore bool      `json:"hasMore"`
}
