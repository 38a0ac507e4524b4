package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Prepayment is a payment received or made ahead of any invoice. It is
// created remotely from bank transactions, so this client only reads
// and allocates; there is no create call.
type Prepayment struct {
	ID              string           `json:"id"`
	Type            string           `json:"type,omitempty"`
	Contact         *ContactRef      `json:"contact,omitempty"`
	Date            string           `json:"date,omitempty"`
	Status          string           `json:"status,omitempty"`
	LineAmountTypes string           `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItem       `json:"lineItems,omitempty"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	SubTotal        *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"totalTax,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
	RemainingCredit *decimal.Decimal `json:"remainingCredit,omitempty"`
	Allocations     []Allocation     `json:"allocations,omitempty"`
	UpdatedDateUTC  string           `json:"updatedDateUtc,omitempty"`
}

type wirePrepayment struct {
	PrepaymentID    *string          `json:"PrepaymentID,omitempty"`
	Type            *string          `json:"Type,omitempty"`
	Contact         *wireContactRef  `json:"Contact,omitempty"`
	Date            *string          `json:"Date,omitempty"`
	Status          *string          `json:"Status,omitempty"`
	LineAmountTypes *string          `json:"LineAmountTypes,omitempty"`
	LineItems       []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode    *string          `json:"CurrencyCode,omitempty"`
	SubTotal        *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"TotalTax,omitempty"`
	Total           *decimal.Decimal `json:"Total,omitempty"`
	RemainingCredit *decimal.Decimal `json:"RemainingCredit,omitempty"`
	Allocations     []wireAllocation `json:"Allocations,omitempty"`
	UpdatedDateUTC  *string          `json:"UpdatedDateUTC,omitempty"`
}

func prepaymentFromWire(w wirePrepayment) Prepayment {
	return Prepayment{
		ID:              deref(w.PrepaymentID),
		Type:            deref(w.Type),
		Contact:         contactRefFromWire(w.Contact),
		Date:            deref(w.Date),
		Status:          deref(w.Status),
		LineAmountTypes: deref(w.LineAmountTypes),
		LineItems:       mapSlice(w.LineItems, lineItemFromWire),
		CurrencyCode:    deref(w.CurrencyCode),
		SubTotal:        w.SubTotal,
		TotalTax:        w.TotalTax,
		Total:           w.Total,
		RemainingCredit: w.RemainingCredit,
		Allocations:     mapSlice(w.Allocations, allocationFromWire),
		UpdatedDateUTC:  deref(w.UpdatedDateUTC),
	}
}

type prepaymentsEnvelope struct {
	Prepayments []wirePrepayment `json:"Prepayments"`
}

// ListPrepayments returns one page of prepayments.
func (c *Client) ListPrepayments(ctx context.Context, opt ListOptions) (Page[Prepayment], error) {
	var env prepaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Prepayments", opt.values(), nil, &env); err != nil {
		return Page[Prepayment]{}, err
	}
	return newPage(mapSlice(env.Prepayments, prepaymentFromWire), opt.page()), nil
}

// GetPrepayment fetches a single prepayment by identifier.
func (c *Client) GetPrepayment(ctx context.Context, id string) (Prepayment, error) {
	var env prepaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Prepayments/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Prepayment{}, err
	}
	w, err := firstOf(env.Prepayments, "prepayment", id)
	if err != nil {
		return Prepayment{}, err
	}
	return prepaymentFromWire(w), nil
}

// AllocatePrepayment applies part of a prepayment's remaining credit
// against an invoice via the nested allocations endpoint.
func (c *Client) AllocatePrepayment(ctx context.Context, id string, in AllocationInput) (Allocation, error) {
	var env allocationsEnvelope
	path := "/Prepayments/" + url.PathEscape(id) + "/Allocations"
	if err := c.do(ctx, http.MethodPut, path, nil, in.toWire(), &env); err != nil {
		return Allocation{}, err
	}
	w, err := firstOf(env.Allocations, "allocation", id)
	if err != nil {
		return Allocation{}, err
	}
	return allocationFromWire(w), nil
}
