package xero

import "github.com/shopspring/decimal"

// Sparse-update convention, used by every *Input type in this package:
// nil pointer fields are omitted from the wire payload and the remote
// leaves the stored value unchanged. Omission, not null, is the signal.
// Booleans are *bool for exactly this reason: a set-but-false value must
// reach the wire (un-marking "track as inventory" is a real operation).
// There is no way to express "clear this field"; see DESIGN.md.

// ContactRef is a read-only reference to a contact. Write payloads send
// only the identifier.
type ContactRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type wireContactRef struct {
	ContactID *string `json:"ContactID,omitempty"`
	Name      *string `json:"Name,omitempty"`
}

func contactRefFromWire(w *wireContactRef) *ContactRef {
	if w == nil || w.ContactID == nil {
		return nil
	}
	return &ContactRef{ID: *w.ContactID, Name: deref(w.Name)}
}

func contactRefToWire(id *string) *wireContactRef {
	if id == nil {
		return nil
	}
	return &wireContactRef{ContactID: id}
}

// AccountRef is a read-only reference to an account.
type AccountRef struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

type wireAccountRef struct {
	AccountID *string `json:"AccountID,omitempty"`
	Code      *string `json:"Code,omitempty"`
	Name      *string `json:"Name,omitempty"`
}

func accountRefFromWire(w *wireAccountRef) *AccountRef {
	if w == nil || (w.AccountID == nil && w.Code == nil) {
		return nil
	}
	return &AccountRef{ID: deref(w.AccountID), Code: deref(w.Code), Name: deref(w.Name)}
}

// InvoiceRef is a read-only reference to an invoice.
type InvoiceRef struct {
	ID     string `json:"id"`
	Number string `json:"number,omitempty"`
}

type wireInvoiceRef struct {
	InvoiceID     *string `json:"InvoiceID,omitempty"`
	InvoiceNumber *string `json:"InvoiceNumber,omitempty"`
}

func invoiceRefFromWire(w *wireInvoiceRef) *InvoiceRef {
	if w == nil || w.InvoiceID == nil {
		return nil
	}
	return &InvoiceRef{ID: *w.InvoiceID, Number: deref(w.InvoiceNumber)}
}

// LineTracking pins a line item to a tracking category option.
type LineTracking struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type wireLineTracking struct {
	Name   *string `json:"Name,omitempty"`
	Option *string `json:"Option,omitempty"`
}

func lineTrackingFromWire(w wireLineTracking) LineTracking {
	return LineTracking{Name: deref(w.Name), Option: deref(w.Option)}
}

func (t LineTracking) toWire() wireLineTracking {
	name, option := t.Name, t.Option
	return wireLineTracking{Name: &name, Option: &option}
}

// LineItem is one ordered element of a transactional entity's detail
// list. LineAmount and TaxAmount are remote-computed and read-only; the
// identifier is assigned remotely and absent on creation.
type LineItem struct {
	ID           string           `json:"id,omitempty"`
	Description  string           `json:"description,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitAmount   *decimal.Decimal `json:"unitAmount,omitempty"`
	AccountCode  string           `json:"accountCode,omitempty"`
	ItemCode     string           `json:"itemCode,omitempty"`
	TaxType      string           `json:"taxType,omitempty"`
	DiscountRate *decimal.Decimal `json:"discountRate,omitempty"`
	LineAmount   *decimal.Decimal `json:"lineAmount,omitempty"`
	TaxAmount    *decimal.Decimal `json:"taxAmount,omitempty"`
	Tracking     []LineTracking   `json:"tracking,omitempty"`
}

type wireLineItem struct {
	LineItemID   *string            `json:"LineItemID,omitempty"`
	Description  *string            `json:"Description,omitempty"`
	Quantity     *decimal.Decimal   `json:"Quantity,omitempty"`
	UnitAmount   *decimal.Decimal   `json:"UnitAmount,omitempty"`
	AccountCode  *string            `json:"AccountCode,omitempty"`
	ItemCode     *string            `json:"ItemCode,omitempty"`
	TaxType      *string            `json:"TaxType,omitempty"`
	DiscountRate *decimal.Decimal   `json:"DiscountRate,omitempty"`
	LineAmount   *decimal.Decimal   `json:"LineAmount,omitempty"`
	TaxAmount    *decimal.Decimal   `json:"TaxAmount,omitempty"`
	Tracking     []wireLineTracking `json:"Tracking,omitempty"`
}

func lineItemFromWire(w wireLineItem) LineItem {
	return LineItem{
		ID:           deref(w.LineItemID),
		Description:  deref(w.Description),
		Quantity:     w.Quantity,
		UnitAmount:   w.UnitAmount,
		AccountCode:  deref(w.AccountCode),
		ItemCode:     deref(w.ItemCode),
		TaxType:      deref(w.TaxType),
		DiscountRate: w.DiscountRate,
		LineAmount:   w.LineAmount,
		TaxAmount:    w.TaxAmount,
		Tracking:     mapSlice(w.Tracking, lineTrackingFromWire),
	}
}

// LineItemInput is the sparse write shape for a line item. Totals and
// identifiers are not representable here on purpose.
type LineItemInput struct {
	Description  *string          `json:"description,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitAmount   *decimal.Decimal `json:"unitAmount,omitempty"`
	AccountCode  *string          `json:"accountCode,omitempty"`
	ItemCode     *string          `json:"itemCode,omitempty"`
	TaxType      *string          `json:"taxType,omitempty"`
	DiscountRate *decimal.Decimal `json:"discountRate,omitempty"`
	Tracking     []LineTracking   `json:"tracking,omitempty"`
}

func (in LineItemInput) toWire() wireLineItem {
	w := wireLineItem{
		Description:  in.Description,
		Quantity:     in.Quantity,
		UnitAmount:   in.UnitAmount,
		AccountCode:  in.AccountCode,
		ItemCode:     in.ItemCode,
		TaxType:      in.TaxType,
		DiscountRate: in.DiscountRate,
	}
	for _, t := range in.Tracking {
		w.Tracking = append(w.Tracking, t.toWire())
	}
	return w
}

func lineItemsToWire(in []LineItemInput) []wireLineItem {
	return mapSlice(in, LineItemInput.toWire)
}

// Allocation applies a credit-bearing entity (credit note, prepayment,
// overpayment) against an invoice for a specific amount. The remote
// enforces the remaining-credit ceiling; this layer never checks it.
type Allocation struct {
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date,omitempty"`
	Invoice *InvoiceRef     `json:"invoice,omitempty"`
}

type wireAllocation struct {
	Amount  *decimal.Decimal `json:"Amount,omitempty"`
	Date    *string          `json:"Date,omitempty"`
	Invoice *wireInvoiceRef  `json:"Invoice,omitempty"`
}

func allocationFromWire(w wireAllocation) Allocation {
	a := Allocation{Date: deref(w.Date), Invoice: invoiceRefFromWire(w.Invoice)}
	if w.Amount != nil {
		a.Amount = *w.Amount
	}
	return a
}

// AllocationInput creates one allocation against an invoice.
type AllocationInput struct {
	InvoiceID string          `json:"invoiceId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      *string         `json:"date,omitempty"`
}

func (in AllocationInput) toWire() wireAllocation {
	amount := in.Amount
	return wireAllocation{
		Amount:  &amount,
		Date:    in.Date,
		Invoice: &wireInvoiceRef{InvoiceID: &in.InvoiceID},
	}
}

// deref returns the pointed-to string or "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ptr returns a pointer to v. Handy when building sparse inputs.
func ptr[T any](v T) *T {
	return &v
}
