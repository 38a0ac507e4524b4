package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Credit note types mirror invoice types: ACCRECCREDIT is issued to a
// customer, ACCPAYCREDIT received from a supplier.
const (
	CreditNoteTypeSales = "ACCRECCREDIT"
	CreditNoteTypeBill  = "ACCPAYCREDIT"
)

// CreditNote is a credit against a contact. RemainingCredit is the
// remote-tracked unallocated balance; allocations must not exceed it,
// and the remote is the one that says no.
type CreditNote struct {
	ID              string           `json:"id"`
	Type            string           `json:"type,omitempty"`
	Number          string           `json:"number,omitempty"`
	Reference       string           `json:"reference,omitempty"`
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

type wireCreditNote struct {
	CreditNoteID     *string          `json:"CreditNoteID,omitempty"`
	Type             *string          `json:"Type,omitempty"`
	CreditNoteNumber *string          `json:"CreditNoteNumber,omitempty"`
	Reference        *string          `json:"Reference,omitempty"`
	Contact          *wireContactRef  `json:"Contact,omitempty"`
	Date             *string          `json:"Date,omitempty"`
	Status           *string          `json:"Status,omitempty"`
	LineAmountTypes  *string          `json:"LineAmountTypes,omitempty"`
	LineItems        []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode     *string          `json:"CurrencyCode,omitempty"`
	SubTotal         *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax         *decimal.Decimal `json:"TotalTax,omitempty"`
	Total            *decimal.Decimal `json:"Total,omitempty"`
	RemainingCredit  *decimal.Decimal `json:"RemainingCredit,omitempty"`
	Allocations      []wireAllocation `json:"Allocations,omitempty"`
	UpdatedDateUTC   *string          `json:"UpdatedDateUTC,omitempty"`
}

func creditNoteFromWire(w wireCreditNote) CreditNote {
	return CreditNote{
		ID:              deref(w.CreditNoteID),
		Type:            deref(w.Type),
		Number:          deref(w.CreditNoteNumber),
		Reference:       deref(w.Reference),
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

// CreditNoteInput is the sparse write shape for credit notes.
type CreditNoteInput struct {
	Type            *string         `json:"type,omitempty"`
	ContactID       *string         `json:"contactId,omitempty"`
	Reference       *string         `json:"reference,omitempty"`
	Date            *string         `json:"date,omitempty"`
	Status          *string         `json:"status,omitempty"`
	LineAmountTypes *string         `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItemInput `json:"lineItems,omitempty"`
	CurrencyCode    *string         `json:"currencyCode,omitempty"`
}

func (in CreditNoteInput) toWire() wireCreditNote {
	w := wireCreditNote{
		Type:            in.Type,
		Contact:         contactRefToWire(in.ContactID),
		Reference:       in.Reference,
		Date:            in.Date,
		Status:          in.Status,
		LineAmountTypes: in.LineAmountTypes,
		CurrencyCode:    in.CurrencyCode,
	}
	if in.LineItems != nil {
		w.LineItems = lineItemsToWire(in.LineItems)
	}
	return w
}

type creditNotesEnvelope struct {
	CreditNotes []wireCreditNote `json:"CreditNotes"`
}

type allocationsEnvelope struct {
	Allocations []wireAllocation `json:"Allocations"`
}

// ListCreditNotes returns one page of credit notes.
func (c *Client) ListCreditNotes(ctx context.Context, opt ListOptions) (Page[CreditNote], error) {
	var env creditNotesEnvelope
	if err := c.do(ctx, http.MethodGet, "/CreditNotes", opt.values(), nil, &env); err != nil {
		return Page[CreditNote]{}, err
	}
	return newPage(mapSlice(env.CreditNotes, creditNoteFromWire), opt.page()), nil
}

// GetCreditNote fetches a single credit note by identifier.
func (c *Client) GetCreditNote(ctx context.Context, id string) (CreditNote, error) {
	var env creditNotesEnvelope
	if err := c.do(ctx, http.MethodGet, "/CreditNotes/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return CreditNote{}, err
	}
	w, err := firstOf(env.CreditNotes, "credit note", id)
	if err != nil {
		return CreditNote{}, err
	}
	return creditNoteFromWire(w), nil
}

// CreateCreditNote submits a new credit note.
func (c *Client) CreateCreditNote(ctx context.Context, in CreditNoteInput) (CreditNote, error) {
	var env creditNotesEnvelope
	if err := c.do(ctx, http.MethodPost, "/CreditNotes", nil, in.toWire(), &env); err != nil {
		return CreditNote{}, err
	}
	w, err := firstOf(env.CreditNotes, "credit note", "")
	if err != nil {
		return CreditNote{}, err
	}
	return creditNoteFromWire(w), nil
}

// UpdateCreditNote applies a sparse update to an existing credit note.
func (c *Client) UpdateCreditNote(ctx context.Context, id string, in CreditNoteInput) (CreditNote, error) {
	var env creditNotesEnvelope
	if err := c.do(ctx, http.MethodPost, "/CreditNotes/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return CreditNote{}, err
	}
	w, err := firstOf(env.CreditNotes, "credit note", id)
	if err != nil {
		return CreditNote{}, err
	}
	return creditNoteFromWire(w), nil
}

// AllocateCreditNote applies part of a credit note's remaining credit
// against an invoice. Allocations live on a nested collection endpoint,
// not the parent record.
func (c *Client) AllocateCreditNote(ctx context.Context, id string, in AllocationInput) (Allocation, error) {
	var env allocationsEnvelope
	path := "/CreditNotes/" + url.PathEscape(id) + "/Allocations"
	if err := c.do(ctx, http.MethodPut, path, nil, in.toWire(), &env); err != nil {
		return Allocation{}, err
	}
	w, err := firstOf(env.Allocations, "allocation", id)
	if err != nil {
		return Allocation{}, err
	}
	return allocationFromWire(w), nil
}
