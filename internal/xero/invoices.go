package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Transitions are enforced remotely; this client only
// offers the calls.
const (
	InvoiceStatusDraft      = "DRAFT"
	InvoiceStatusSubmitted  = "SUBMITTED"
	InvoiceStatusAuthorised = "AUTHORISED"
	InvoiceStatusPaid       = "PAID"
	InvoiceStatusVoided     = "VOIDED"
	InvoiceStatusDeleted    = "DELETED"
)

// Invoice types: ACCREC is a sales invoice, ACCPAY a bill.
const (
	InvoiceTypeSales = "ACCREC"
	InvoiceTypeBill  = "ACCPAY"
)

// Invoice is a sales invoice or bill. All money totals are
// remote-computed and read-only.
type Invoice struct {
	ID              string           `json:"id"`
	Type            string           `json:"type,omitempty"`
	Number          string           `json:"number,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Contact         *ContactRef      `json:"contact,omitempty"`
	Date            string           `json:"date,omitempty"`
	DueDate         string           `json:"dueDate,omitempty"`
	Status          string           `json:"status,omitempty"`
	LineAmountTypes string           `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItem       `json:"lineItems,omitempty"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	BrandingThemeID string           `json:"brandingThemeId,omitempty"`
	SubTotal        *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"totalTax,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
	TotalDiscount   *decimal.Decimal `json:"totalDiscount,omitempty"`
	AmountDue       *decimal.Decimal `json:"amountDue,omitempty"`
	AmountPaid      *decimal.Decimal `json:"amountPaid,omitempty"`
	AmountCredited  *decimal.Decimal `json:"amountCredited,omitempty"`
	UpdatedDateUTC  string           `json:"updatedDateUtc,omitempty"`
}

type wireInvoice struct {
	InvoiceID       *string          `json:"InvoiceID,omitempty"`
	Type            *string          `json:"Type,omitempty"`
	InvoiceNumber   *string          `json:"InvoiceNumber,omitempty"`
	Reference       *string          `json:"Reference,omitempty"`
	Contact         *wireContactRef  `json:"Contact,omitempty"`
	Date            *string          `json:"Date,omitempty"`
	DueDate         *string          `json:"DueDate,omitempty"`
	Status          *string          `json:"Status,omitempty"`
	LineAmountTypes *string          `json:"LineAmountTypes,omitempty"`
	LineItems       []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode    *string          `json:"CurrencyCode,omitempty"`
	BrandingThemeID *string          `json:"BrandingThemeID,omitempty"`
	SubTotal        *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"TotalTax,omitempty"`
	Total           *decimal.Decimal `json:"Total,omitempty"`
	TotalDiscount   *decimal.Decimal `json:"TotalDiscount,omitempty"`
	AmountDue       *decimal.Decimal `json:"AmountDue,omitempty"`
	AmountPaid      *decimal.Decimal `json:"AmountPaid,omitempty"`
	AmountCredited  *decimal.Decimal `json:"AmountCredited,omitempty"`
	UpdatedDateUTC  *string          `json:"UpdatedDateUTC,omitempty"`
}

func invoiceFromWire(w wireInvoice) Invoice {
	return Invoice{
		ID:              deref(w.InvoiceID),
		Type:            deref(w.Type),
		Number:          deref(w.InvoiceNumber),
		Reference:       deref(w.Reference),
		Contact:         contactRefFromWire(w.Contact),
		Date:            deref(w.Date),
		DueDate:         deref(w.DueDate),
		Status:          deref(w.Status),
		LineAmountTypes: deref(w.LineAmountTypes),
		LineItems:       mapSlice(w.LineItems, lineItemFromWire),
		CurrencyCode:    deref(w.CurrencyCode),
		BrandingThemeID: deref(w.BrandingThemeID),
		SubTotal:        w.SubTotal,
		TotalTax:        w.TotalTax,
		Total:           w.Total,
		TotalDiscount:   w.TotalDiscount,
		AmountDue:       w.AmountDue,
		AmountPaid:      w.AmountPaid,
		AmountCredited:  w.AmountCredited,
		UpdatedDateUTC:  deref(w.UpdatedDateUTC),
	}
}

// InvoiceInput is the sparse write shape for invoices. Identity, money
// totals and timestamps are never accepted here.
type InvoiceInput struct {
	Type            *string          `json:"type,omitempty"`
	ContactID       *string          `json:"contactId,omitempty"`
	Number          *string          `json:"number,omitempty"`
	Reference       *string          `json:"reference,omitempty"`
	Date            *string          `json:"date,omitempty"`
	DueDate         *string          `json:"dueDate,omitempty"`
	Status          *string          `json:"status,omitempty"`
	LineAmountTypes *string          `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItemInput  `json:"lineItems,omitempty"`
	CurrencyCode    *string          `json:"currencyCode,omitempty"`
	BrandingThemeID *string          `json:"brandingThemeId,omitempty"`
}

func (in InvoiceInput) toWire() wireInvoice {
	w := wireInvoice{
		Type:            in.Type,
		Contact:         contactRefToWire(in.ContactID),
		InvoiceNumber:   in.Number,
		Reference:       in.Reference,
		Date:            in.Date,
		DueDate:         in.DueDate,
		Status:          in.Status,
		LineAmountTypes: in.LineAmountTypes,
		CurrencyCode:    in.CurrencyCode,
		BrandingThemeID: in.BrandingThemeID,
	}
	if in.LineItems != nil {
		w.LineItems = lineItemsToWire(in.LineItems)
	}
	return w
}

type invoicesEnvelope struct {
	Invoices []wireInvoice `json:"Invoices"`
}

// InvoiceListOptions extends ListOptions with invoice-specific filters.
type InvoiceListOptions struct {
	ListOptions
	SummaryOnly bool
}

// ListInvoices returns one page of invoices.
func (c *Client) ListInvoices(ctx context.Context, opt InvoiceListOptions) (Page[Invoice], error) {
	q := opt.values()
	if opt.SummaryOnly {
		q.Set("summaryOnly", "true")
	}
	var env invoicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/Invoices", q, nil, &env); err != nil {
		return Page[Invoice]{}, err
	}
	return newPage(mapSlice(env.Invoices, invoiceFromWire), opt.page()), nil
}

// GetInvoice fetches a single invoice by identifier.
func (c *Client) GetInvoice(ctx context.Context, id string) (Invoice, error) {
	var env invoicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/Invoices/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Invoice{}, err
	}
	w, err := firstOf(env.Invoices, "invoice", id)
	if err != nil {
		return Invoice{}, err
	}
	return invoiceFromWire(w), nil
}

// CreateInvoice submits a new invoice and returns the remote's view of
// it, totals included.
func (c *Client) CreateInvoice(ctx context.Context, in InvoiceInput) (Invoice, error) {
	var env invoicesEnvelope
	if err := c.do(ctx, http.MethodPost, "/Invoices", nil, in.toWire(), &env); err != nil {
		return Invoice{}, err
	}
	w, err := firstOf(env.Invoices, "invoice", "")
	if err != nil {
		return Invoice{}, err
	}
	return invoiceFromWire(w), nil
}

// UpdateInvoice applies a sparse update to an existing invoice.
func (c *Client) UpdateInvoice(ctx context.Context, id string, in InvoiceInput) (Invoice, error) {
	var env invoicesEnvelope
	if err := c.do(ctx, http.MethodPost, "/Invoices/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return Invoice{}, err
	}
	w, err := firstOf(env.Invoices, "invoice", id)
	if err != nil {
		return Invoice{}, err
	}
	return invoiceFromWire(w), nil
}

// VoidInvoice requests the VOIDED transition. Whether the current state
// allows it is the remote's decision, surfaced unchanged.
func (c *Client) VoidInvoice(ctx context.Context, id string) (Invoice, error) {
	return c.UpdateInvoice(ctx, id, InvoiceInput{Status: ptr(InvoiceStatusVoided)})
}

// DeleteInvoice requests the DELETED transition (draft/submitted only,
// remote-enforced).
func (c *Client) DeleteInvoice(ctx context.Context, id string) (Invoice, error) {
	return c.UpdateInvoice(ctx, id, InvoiceInput{Status: ptr(InvoiceStatusDeleted)})
}
