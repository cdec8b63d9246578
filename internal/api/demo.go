package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	demoDefaultLimit = 50
	demoMaxLimit     = 500
)

// DemoStore holds a deterministic in-memory invoice dataset so the TUI can
// run without a real backend.
type DemoStore struct {
	invoices []Invoice
}

// NewDemoStore generates count synthetic invoices. IDs derive from the index
// so repeated runs produce the same dataset.
func NewDemoStore(count int) *DemoStore {
	if count < 0 {
		count = 0
	}
	sellers := []string{
		"Didi Chuxing", "China Railway", "Starbucks Coffee", "JD.com",
		"Sinopec Fuel", "Hilton Hotels", "Air China", "Meituan",
	}
	statuses := []string{StatusUnreimbursed, StatusSubmitted, StatusReimbursed, StatusVoided}
	invoices := make([]Invoice, count)
	for i := range invoices {
		inv := Invoice{
			ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("invoice-%d", i))),
			InvoiceNumber: fmt.Sprintf("INV-%06d", i+1),
			SellerName:    sellers[i%len(sellers)],
			BuyerName:     "Acme Consulting Ltd",
			AmountCents:   int64(1200 + (i*3779)%980000),
			Currency:      "CNY",
			Status:        statuses[i%len(statuses)],
			IssuedAt:      fmt.Sprintf("2026-%02d-%02d", 1+i%12, 1+i%28),
		}
		// Every fifth invoice carries multi-line notes, which exercises
		// dynamic row heights in the UI.
		if i%5 == 0 {
			inv.Notes = fmt.Sprintf("Trip reimbursement, leg %d.\nApproved by finance on submission.", i/5+1)
		}
		invoices[i] = inv
	}
	return &DemoStore{invoices: invoices}
}

// Len returns the dataset size.
func (d *DemoStore) Len() int { return len(d.invoices) }

// Query slices the dataset the same way the real backend pages its table.
func (d *DemoStore) Query(query PageQuery) Page {
	filtered := d.invoices
	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		filtered = nil
		for _, inv := range d.invoices {
			if strings.Contains(strings.ToLower(inv.SellerName), search) ||
				strings.Contains(strings.ToLower(inv.InvoiceNumber), search) {
				filtered = append(filtered, inv)
			}
		}
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	limit := query.Limit
	if limit <= 0 {
		limit = demoDefaultLimit
	}
	if limit > demoMaxLimit {
		limit = demoMaxLimit
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]Invoice, end-offset)
	copy(items, filtered[offset:end])
	return Page{
		Items:   items,
		Total:   len(filtered),
		HasMore: end < len(filtered),
	}
}

// NewDemoRouter exposes the store over the same route the real backend
// serves, so Client works against either.
func NewDemoRouter(store *DemoStore) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/invoices", store.handleList).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	return r
}

func (d *DemoStore) handleList(w http.ResponseWriter, r *http.Request) {
	query := PageQuery{Search: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
		query.Offset = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		query.Limit = n
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d.Query(query)); err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
	}
}
