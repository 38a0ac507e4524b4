package xero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const invoiceWireJSON = `{
	"Invoices": [{
		"InvoiceID": "inv-1",
		"Type": "ACCREC",
		"InvoiceNumber": "INV-0042",
		"Reference": "PO-7",
		"Contact": {"ContactID": "con-1", "Name": "Acme Ltd"},
		"Date": "2026-01-15",
		"DueDate": "2026-02-15",
		"Status": "AUTHORISED",
		"LineAmountTypes": "Exclusive",
		"LineItems": [{
			"LineItemID": "li-1",
			"Description": "Consulting",
			"Quantity": 2,
			"UnitAmount": 150.50,
			"AccountCode": "200",
			"TaxType": "OUTPUT",
			"LineAmount": 301.00,
			"TaxAmount": 45.15
		}],
		"CurrencyCode": "NZD",
		"SubTotal": 301.00,
		"TotalTax": 45.15,
		"Total": 346.15,
		"AmountDue": 346.15,
		"UpdatedDateUTC": "/Date(1760000000000)/"
	}]
}`

func TestGetInvoiceMapsWireToDomain(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Invoices/inv-1" {
			t.Errorf("path = %s, want /Invoices/inv-1", r.URL.Path)
		}
		w.Write([]byte(invoiceWireJSON))
	}))

	inv, err := c.GetInvoice(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}

	if inv.ID != "inv-1" {
		t.Errorf("ID = %q, want %q", inv.ID, "inv-1")
	}
	if inv.Number != "INV-0042" {
		t.Errorf("Number = %q, want %q", inv.Number, "INV-0042")
	}
	if inv.Contact == nil || inv.Contact.ID != "con-1" || inv.Contact.Name != "Acme Ltd" {
		t.Errorf("Contact = %+v, want id con-1 name Acme Ltd", inv.Contact)
	}
	if len(inv.LineItems) != 1 {
		t.Fatalf("len(LineItems) = %d, want 1", len(inv.LineItems))
	}
	li := inv.LineItems[0]
	if li.Description != "Consulting" {
		t.Errorf("Description = %q, want %q", li.Description, "Consulting")
	}
	if li.UnitAmount == nil || !li.UnitAmount.Equal(decimal.NewFromFloat(150.50)) {
		t.Errorf("UnitAmount = %v, want 150.50", li.UnitAmount)
	}
	if inv.Total == nil || !inv.Total.Equal(decimal.NewFromFloat(346.15)) {
		t.Errorf("Total = %v, want 346.15", inv.Total)
	}
}

func TestGetInvoiceDomainJSONUsesCamelCase(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(invoiceWireJSON))
	}))

	inv, err := c.GetInvoice(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}

	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(b)

	for _, want := range []string{`"id":"inv-1"`, `"dueDate":"2026-02-15"`, `"lineItems"`, `"unitAmount":150.5`} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered JSON missing %s:\n%s", want, out)
		}
	}
	for _, reject := range []string{"InvoiceID", "InvoiceNumber", "LineItems", "DueDate"} {
		if strings.Contains(out, reject) {
			t.Errorf("rendered JSON leaks wire field %s:\n%s", reject, out)
		}
	}
}

func TestCreateInvoiceWirePayload(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Invoices" {
			t.Errorf("%s %s, want POST /Invoices", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Write([]byte(invoiceWireJSON))
	}))

	in := InvoiceInput{
		Type:      ptr(InvoiceTypeSales),
		ContactID: ptr("con-1"),
		Date:      ptr("2026-01-15"),
		LineItems: []LineItemInput{{
			Description: ptr("Consulting"),
			Quantity:    decimalPtr(t, "2"),
			UnitAmount:  decimalPtr(t, "150.50"),
			AccountCode: ptr("200"),
		}},
	}
	inv, err := c.CreateInvoice(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	if inv.ID != "inv-1" {
		t.Errorf("ID = %q, want inv-1", inv.ID)
	}

	if body["Type"] != "ACCREC" {
		t.Errorf("Type = %v, want ACCREC", body["Type"])
	}
	contact, ok := body["Contact"].(map[string]any)
	if !ok || contact["ContactID"] != "con-1" {
		t.Errorf("Contact = %v, want {ContactID: con-1}", body["Contact"])
	}
	if _, present := contact["Name"]; present {
		t.Error("outbound contact ref carries Name, want identifier only")
	}
	if _, present := body["Status"]; present {
		t.Error("unset Status was transmitted, want omitted")
	}
	lines, ok := body["LineItems"].([]any)
	if !ok || len(lines) != 1 {
		t.Fatalf("LineItems = %v, want one line", body["LineItems"])
	}
	line := lines[0].(map[string]any)
	if line["UnitAmount"] != 150.50 {
		t.Errorf("UnitAmount = %v (%T), want unquoted 150.5", line["UnitAmount"], line["UnitAmount"])
	}
}

func TestUpdateInvoiceSparseBody(t *testing.T) {
	var raw []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		w.Write([]byte(invoiceWireJSON))
	}))

	_, err := c.UpdateInvoice(context.Background(), "inv-1", InvoiceInput{Reference: ptr("PO-8")})
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}

	if string(raw) != `{"Reference":"PO-8"}` {
		t.Errorf("body = %s, want only the reference field", raw)
	}
}

func TestVoidInvoicePassesStatusThrough(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"Invoices":[{"InvoiceID":"inv-1","Status":"VOIDED"}]}`))
	}))

	inv, err := c.VoidInvoice(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("VoidInvoice() error = %v", err)
	}

	if len(body) != 1 || body["Status"] != "VOIDED" {
		t.Errorf("body = %v, want exactly {Status: VOIDED}", body)
	}
	if inv.Status != InvoiceStatusVoided {
		t.Errorf("Status = %q, want VOIDED", inv.Status)
	}
}

func TestVoidInvoiceInvalidTransitionSurfacesRemoteError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"Elements":[{"ValidationErrors":[{"Message":"Invoice not of valid status for modification"}]}]}`))
	}))

	_, err := c.VoidInvoice(context.Background(), "inv-1")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Message != "Invoice not of valid status for modification" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestListInvoicesPaginationHeuristic(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantHasMore bool
	}{
		{"full page", 100, true},
		{"short page", 99, false},
		{"empty page", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				items := make([]string, tt.count)
				for i := range items {
					items[i] = fmt.Sprintf(`{"InvoiceID":"inv-%d"}`, i)
				}
				fmt.Fprintf(w, `{"Invoices":[%s]}`, strings.Join(items, ","))
			}))

			page, err := c.ListInvoices(context.Background(), InvoiceListOptions{
				ListOptions: ListOptions{Page: 3},
			})
			if err != nil {
				t.Fatalf("ListInvoices() error = %v", err)
			}
			if len(page.Items) != tt.count {
				t.Errorf("len(Items) = %d, want %d", len(page.Items), tt.count)
			}
			if page.Page != 3 {
				t.Errorf("Page = %d, want 3", page.Page)
			}
			if page.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", page.HasMore, tt.wantHasMore)
			}
		})
	}
}

func TestListInvoicesQueryParameters(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"Invoices":[]}`))
	}))

	_, err := c.ListInvoices(context.Background(), InvoiceListOptions{
		ListOptions: ListOptions{
			Where: `Status=="AUTHORISED"`,
			Order: "Date DESC",
			Page:  2,
		},
		SummaryOnly: true,
	})
	if err != nil {
		t.Fatalf("ListInvoices() error = %v", err)
	}

	want := map[string]string{
		"where":       `Status=="AUTHORISED"`,
		"order":       "Date DESC",
		"page":        "2",
		"summaryOnly": "true",
	}
	for k, v := range want {
		if got := query[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query[%s] = %v, want %q", k, got, v)
		}
	}
}

func TestCreateInvoiceThenFetch(t *testing.T) {
	stored := `{"Invoices":[{"InvoiceID":"inv-9","Type":"ACCREC","Status":"DRAFT","Contact":{"ContactID":"con-1","Name":"Acme Ltd"},"Total":100.00}]}`
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/Invoices":
			w.Write([]byte(stored))
		case r.Method == http.MethodGet && r.URL.Path == "/Invoices/inv-9":
			w.Write([]byte(stored))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	created, err := c.CreateInvoice(context.Background(), InvoiceInput{
		Type:      ptr(InvoiceTypeSales),
		ContactID: ptr("con-1"),
	})
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}

	fetched, err := c.GetInvoice(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}

	if fetched.ID != created.ID {
		t.Errorf("fetched ID = %q, want %q", fetched.ID, created.ID)
	}
	if fetched.Status != InvoiceStatusDraft {
		t.Errorf("Status = %q, want DRAFT", fetched.Status)
	}
	if fetched.Contact == nil || fetched.Contact.ID != created.Contact.ID {
		t.Errorf("Contact mismatch: %+v vs %+v", fetched.Contact, created.Contact)
	}
}

// decimalPtr parses a decimal literal for test inputs.
func decimalPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parsing decimal %q: %v", s, err)
	}
	return &d
}
