package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Overpayment is an excess payment against an invoice, created remotely
// from bank transactions. Read and allocate only, like prepayments.
type Overpayment struct {
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

type wireOverpayment struct {
	OverpaymentID   *string          `json:"OverpaymentID,omitempty"`
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

func overpaymentFromWire(w wireOverpayment) Overpayment {
	return Overpayment{
		ID:              deref(w.OverpaymentID),
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

type overpaymentsEnvelope struct {
	Overpayments []wireOverpayment `json:"Overpayments"`
}

// ListOverpayments returns one page of overpayments.
func (c *Client) ListOverpayments(ctx context.Context, opt ListOptions) (Page[Overpayment], error) {
	var env overpaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Overpayments", opt.values(), nil, &env); err != nil {
		return Page[Overpayment]{}, err
	}
	return newPage(mapSlice(env.Overpayments, overpaymentFromWire), opt.page()), nil
}

// GetOverpayment fetches a single overpayment by identifier.
func (c *Client) GetOverpayment(ctx context.Context, id string) (Overpayment, error) {
	var env overpaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Overpayments/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Overpayment{}, err
	}
	w, err := firstOf(env.Overpayments, "overpayment", id)
	if err != nil {
		return Overpayment{}, err
	}
	return overpaymentFromWire(w), nil
}

// AllocateOverpayment applies part of an overpayment's remaining credit
// against an invoice via the nested allocations endpoint.
func (c *Client) AllocateOverpayment(ctx context.Context, id string, in AllocationInput) (Allocation, error) {
	var env allocationsEnvelope
	path := "/Overpayments/" + url.PathEscape(id) + "/Allocations"
	if err := c.do(ctx, http.MethodPut, path, nil, in.toWire(), &env); err != nil {
		return Allocation{}, err
	}
	w, err := firstOf(env.Allocations, "allocation", id)
	if err != nil {
		return Allocation{}, err
	}
	return allocationFromWire(w), nil
}
