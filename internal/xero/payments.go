package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Payment statuses.
const (
	PaymentStatusAuthorised = "AUTHORISED"
	PaymentStatusDeleted    = "DELETED"
)

// Payment applies money against an invoice, credit note, prepayment or
// overpayment from a bank-enabled account.
type Payment struct {
	ID             string           `json:"id"`
	Invoice        *InvoiceRef      `json:"invoice,omitempty"`
	Account        *AccountRef      `json:"account,omitempty"`
	Date           string           `json:"date,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	CurrencyRate   *decimal.Decimal `json:"currencyRate,omitempty"`
	Reference      string           `json:"reference,omitempty"`
	Status         string           `json:"status,omitempty"`
	PaymentType    string           `json:"paymentType,omitempty"`
	IsReconciled   *bool            `json:"isReconciled,omitempty"`
	UpdatedDateUTC string           `json:"updatedDateUtc,omitempty"`
}

type wirePayment struct {
	PaymentID      *string          `json:"PaymentID,omitempty"`
	Invoice        *wireInvoiceRef  `json:"Invoice,omitempty"`
	Account        *wireAccountRef  `json:"Account,omitempty"`
	Date           *string          `json:"Date,omitempty"`
	Amount         *decimal.Decimal `json:"Amount,omitempty"`
	CurrencyRate   *decimal.Decimal `json:"CurrencyRate,omitempty"`
	Reference      *string          `json:"Reference,omitempty"`
	Status         *string          `json:"Status,omitempty"`
	PaymentType    *string          `json:"PaymentType,omitempty"`
	IsReconciled   *bool            `json:"IsReconciled,omitempty"`
	UpdatedDateUTC *string          `json:"UpdatedDateUTC,omitempty"`
}

func paymentFromWire(w wirePayment) Payment {
	return Payment{
		ID:             deref(w.PaymentID),
		Invoice:        invoiceRefFromWire(w.Invoice),
		Account:        accountRefFromWire(w.Account),
		Date:           deref(w.Date),
		Amount:         w.Amount,
		CurrencyRate:   w.CurrencyRate,
		Reference:      deref(w.Reference),
		Status:         deref(w.Status),
		PaymentType:    deref(w.PaymentType),
		IsReconciled:   w.IsReconciled,
		UpdatedDateUTC: deref(w.UpdatedDateUTC),
	}
}

// PaymentInput creates a payment. InvoiceID and either AccountID or
// AccountCode identify the two sides; references collapse to bare
// identifiers on the wire.
type PaymentInput struct {
	InvoiceID   *string          `json:"invoiceId,omitempty"`
	AccountID   *string          `json:"accountId,omitempty"`
	AccountCode *string          `json:"accountCode,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Reference   *string          `json:"reference,omitempty"`
}

func (in PaymentInput) toWire() wirePayment {
	w := wirePayment{
		Date:      in.Date,
		Amount:    in.Amount,
		Reference: in.Reference,
	}
	if in.InvoiceID != nil {
		w.Invoice = &wireInvoiceRef{InvoiceID: in.InvoiceID}
	}
	if in.AccountID != nil || in.AccountCode != nil {
		w.Account = &wireAccountRef{AccountID: in.AccountID, Code: in.AccountCode}
	}
	return w
}

type paymentsEnvelope struct {
	Payments []wirePayment `json:"Payments"`
}

// ListPayments returns one page of payments.
func (c *Client) ListPayments(ctx context.Context, opt ListOptions) (Page[Payment], error) {
	var env paymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Payments", opt.values(), nil, &env); err != nil {
		return Page[Payment]{}, err
	}
	return newPage(mapSlice(env.Payments, paymentFromWire), opt.page()), nil
}

// GetPayment fetches a single payment by identifier.
func (c *Client) GetPayment(ctx context.Context, id string) (Payment, error) {
	var env paymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Payments/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Payment{}, err
	}
	w, err := firstOf(env.Payments, "payment", id)
	if err != nil {
		return Payment{}, err
	}
	return paymentFromWire(w), nil
}

// CreatePayment submits a new payment. Xero creates via PUT here.
func (c *Client) CreatePayment(ctx context.Context, in PaymentInput) (Payment, error) {
	var env paymentsEnvelope
	if err := c.do(ctx, http.MethodPut, "/Payments", nil, in.toWire(), &env); err != nil {
		return Payment{}, err
	}
	w, err := firstOf(env.Payments, "payment", "")
	if err != nil {
		return Payment{}, err
	}
	return paymentFromWire(w), nil
}

// DeletePayment is a soft delete: a POST flipping status to DELETED.
func (c *Client) DeletePayment(ctx context.Context, id string) (Payment, error) {
	body := wirePayment{Status: ptr(PaymentStatusDeleted)}
	var env paymentsEnvelope
	if err := c.do(ctx, http.MethodPost, "/Payments/"+url.PathEscape(id), nil, body, &env); err != nil {
		return Payment{}, err
	}
	w, err := firstOf(env.Payments, "payment", id)
	if err != nil {
		return Payment{}, err
	}
	return paymentFromWire(w), nil
}
