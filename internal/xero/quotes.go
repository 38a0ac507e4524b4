package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuoteStatusDraft    = "DRAFT"
	QuoteStatusSent     = "SENT"
	QuoteStatusAccepted = "ACCEPTED"
	QuoteStatusDeclined = "DECLINED"
	QuoteStatusInvoiced = "INVOICED"
	QuoteStatusDeleted  = "DELETED"
)

// Quote is a priced offer to a contact.
type Quote struct {
	ID              string           `json:"id"`
	Number          string           `json:"number,omitempty"`
	Contact         *ContactRef      `json:"contact,omitempty"`
	Date            string           `json:"date,omitempty"`
	ExpiryDate      string           `json:"expiryDate,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Title           string           `json:"title,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Terms           string           `json:"terms,omitempty"`
	Status          string           `json:"status,omitempty"`
	LineAmountTypes string           `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItem       `json:"lineItems,omitempty"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	SubTotal        *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"totalTax,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
	TotalDiscount   *decimal.Decimal `json:"totalDiscount,omitempty"`
	UpdatedDateUTC  string           `json:"updatedDateUtc,omitempty"`
}

type wireQuote struct {
	QuoteID         *string          `json:"QuoteID,omitempty"`
	QuoteNumber     *string          `json:"QuoteNumber,omitempty"`
	Contact         *wireContactRef  `json:"Contact,omitempty"`
	Date            *string          `json:"Date,omitempty"`
	ExpiryDate      *string          `json:"ExpiryDate,omitempty"`
	Reference       *string          `json:"Reference,omitempty"`
	Title           *string          `json:"Title,omitempty"`
	Summary         *string          `json:"Summary,omitempty"`
	Terms           *string          `json:"Terms,omitempty"`
	Status          *string          `json:"Status,omitempty"`
	LineAmountTypes *string          `json:"LineAmountTypes,omitempty"`
	LineItems       []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode    *string          `json:"CurrencyCode,omitempty"`
	SubTotal        *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"TotalTax,omitempty"`
	Total           *decimal.Decimal `json:"Total,omitempty"`
	TotalDiscount   *decimal.Decimal `json:"TotalDiscount,omitempty"`
	UpdatedDateUTC  *string          `json:"UpdatedDateUTC,omitempty"`
}

func quoteFromWire(w wireQuote) Quote {
	return Quote{
		ID:              deref(w.QuoteID),
		Number:          deref(w.QuoteNumber),
		Contact:         contactRefFromWire(w.Contact),
		Date:            deref(w.Date),
		ExpiryDate:      deref(w.ExpiryDate),
		Reference:       deref(w.Reference),
		Title:           deref(w.Title),
		Summary:         deref(w.Summary),
		Terms:           deref(w.Terms),
		Status:          deref(w.Status),
		LineAmountTypes: deref(w.LineAmountTypes),
		LineItems:       mapSlice(w.LineItems, lineItemFromWire),
		CurrencyCode:    deref(w.CurrencyCode),
		SubTotal:        w.SubTotal,
		TotalTax:        w.TotalTax,
		Total:           w.Total,
		TotalDiscount:   w.TotalDiscount,
		UpdatedDateUTC:  deref(w.UpdatedDateUTC),
	}
}

// QuoteInput is the sparse write shape for quotes.
type QuoteInput struct {
	ContactID       *string         `json:"contactId,omitempty"`
	Date            *string         `json:"date,omitempty"`
	ExpiryDate      *string         `json:"expiryDate,omitempty"`
	Reference       *string         `json:"reference,omitempty"`
	Title           *string         `json:"title,omitempty"`
	Summary         *string         `json:"summary,omitempty"`
	Terms           *string         `json:"terms,omitempty"`
	Status          *string         `json:"status,omitempty"`
	LineAmountTypes *string         `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItemInput `json:"lineItems,omitempty"`
	CurrencyCode    *string         `json:"currencyCode,omitempty"`
}

func (in QuoteInput) toWire() wireQuote {
	w := wireQuote{
		Contact:         contactRefToWire(in.ContactID),
		Date:            in.Date,
		ExpiryDate:      in.ExpiryDate,
		Reference:       in.Reference,
		Title:           in.Title,
		Summary:         in.Summary,
		Terms:           in.Terms,
		Status:          in.Status,
		LineAmountTypes: in.LineAmountTypes,
		CurrencyCode:    in.CurrencyCode,
	}
	if in.LineItems != nil {
		w.LineItems = lineItemsToWire(in.LineItems)
	}
	return w
}

type quotesEnvelope struct {
	Quotes []wireQuote `json:"Quotes"`
}

// ListQuotes returns one page of quotes.
func (c *Client) ListQuotes(ctx context.Context, opt ListOptions) (Page[Quote], error) {
	var env quotesEnvelope
	if err := c.do(ctx, http.MethodGet, "/Quotes", opt.values(), nil, &env); err != nil {
		return Page[Quote]{}, err
	}
	return newPage(mapSlice(env.Quotes, quoteFromWire), opt.page()), nil
}

// GetQuote fetches a single quote by identifier.
func (c *Client) GetQuote(ctx context.Context, id string) (Quote, error) {
	var env quotesEnvelope
	if err := c.do(ctx, http.MethodGet, "/Quotes/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Quote{}, err
	}
	w, err := firstOf(env.Quotes, "quote", id)
	if err != nil {
		return Quote{}, err
	}
	return quoteFromWire(w), nil
}

// CreateQuote submits a new quote.
func (c *Client) CreateQuote(ctx context.Context, in QuoteInput) (Quote, error) {
	var env quotesEnvelope
	if err := c.do(ctx, http.MethodPost, "/Quotes", nil, in.toWire(), &env); err != nil {
		return Quote{}, err
	}
	w, err := firstOf(env.Quotes, "quote", "")
	if err != nil {
		return Quote{}, err
	}
	return quoteFromWire(w), nil
}

// UpdateQuote applies a sparse update to an existing quote.
func (c *Client) UpdateQuote(ctx context.Context, id string, in QuoteInput) (Quote, error) {
	var env quotesEnvelope
	if err := c.do(ctx, http.MethodPost, "/Quotes/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return Quote{}, err
	}
	w, err := firstOf(env.Quotes, "quote", id)
	if err != nil {
		return Quote{}, err
	}
	return quoteFromWire(w), nil
}
