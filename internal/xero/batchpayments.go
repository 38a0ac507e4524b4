package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Batch payment statuses.
const (
	BatchPaymentStatusAuthorised = "AUTHORISED"
	BatchPaymentStatusDeleted    = "DELETED"
)

// BatchPayment groups several invoice payments into one bank
// transaction. TotalAmount is remote-computed across the batch.
type BatchPayment struct {
	ID             string           `json:"id"`
	Account        *AccountRef      `json:"account,omitempty"`
	Date           string           `json:"date,omitempty"`
	Reference      string           `json:"reference,omitempty"`
	Type           string           `json:"type,omitempty"`
	Status         string           `json:"status,omitempty"`
	TotalAmount    *decimal.Decimal `json:"totalAmount,omitempty"`
	IsReconciled   *bool            `json:"isReconciled,omitempty"`
	Payments       []Payment        `json:"payments,omitempty"`
	UpdatedDateUTC string           `json:"updatedDateUtc,omitempty"`
}

type wireBatchPayment struct {
	BatchPaymentID *string          `json:"BatchPaymentID,omitempty"`
	Account        *wireAccountRef  `json:"Account,omitempty"`
	Date           *string          `json:"Date,omitempty"`
	Reference      *string          `json:"Reference,omitempty"`
	Type           *string          `json:"Type,omitempty"`
	Status         *string          `json:"Status,omitempty"`
	TotalAmount    *decimal.Decimal `json:"TotalAmount,omitempty"`
	IsReconciled   *bool            `json:"IsReconciled,omitempty"`
	Payments       []wirePayment    `json:"Payments,omitempty"`
	UpdatedDateUTC *string          `json:"UpdatedDateUTC,omitempty"`
}

func batchPaymentFromWire(w wireBatchPayment) BatchPayment {
	return BatchPayment{
		ID:             deref(w.BatchPaymentID),
		Account:        accountRefFromWire(w.Account),
		Date:           deref(w.Date),
		Reference:      deref(w.Reference),
		Type:           deref(w.Type),
		Status:         deref(w.Status),
		TotalAmount:    w.TotalAmount,
		IsReconciled:   w.IsReconciled,
		Payments:       mapSlice(w.Payments, paymentFromWire),
		UpdatedDateUTC: deref(w.UpdatedDateUTC),
	}
}

// BatchPaymentInput creates a batch of payments from one account.
type BatchPaymentInput struct {
	AccountID *string        `json:"accountId,omitempty"`
	Date      *string        `json:"date,omitempty"`
	Reference *string        `json:"reference,omitempty"`
	Payments  []PaymentInput `json:"payments,omitempty"`
}

func (in BatchPaymentInput) toWire() wireBatchPayment {
	w := wireBatchPayment{
		Date:      in.Date,
		Reference: in.Reference,
	}
	if in.AccountID != nil {
		w.Account = &wireAccountRef{AccountID: in.AccountID}
	}
	if in.Payments != nil {
		w.Payments = mapSlice(in.Payments, PaymentInput.toWire)
	}
	return w
}

type batchPaymentsEnvelope struct {
	BatchPayments []wireBatchPayment `json:"BatchPayments"`
}

// ListBatchPayments returns the full batch-payment collection; the
// endpoint is not paginated.
func (c *Client) ListBatchPayments(ctx context.Context, opt ListOptions) ([]BatchPayment, error) {
	var env batchPaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/BatchPayments", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.BatchPayments, batchPaymentFromWire), nil
}

// GetBatchPayment fetches a single batch payment by identifier.
func (c *Client) GetBatchPayment(ctx context.Context, id string) (BatchPayment, error) {
	var env batchPaymentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/BatchPayments/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return BatchPayment{}, err
	}
	w, err := firstOf(env.BatchPayments, "batch payment", id)
	if err != nil {
		return BatchPayment{}, err
	}
	return batchPaymentFromWire(w), nil
}

// CreateBatchPayment submits a new batch. Xero creates via PUT here.
func (c *Client) CreateBatchPayment(ctx context.Context, in BatchPaymentInput) (BatchPayment, error) {
	var env batchPaymentsEnvelope
	if err := c.do(ctx, http.MethodPut, "/BatchPayments", nil, in.toWire(), &env); err != nil {
		return BatchPayment{}, err
	}
	w, err := firstOf(env.BatchPayments, "batch payment", "")
	if err != nil {
		return BatchPayment{}, err
	}
	return batchPaymentFromWire(w), nil
}

// DeleteBatchPayment is a soft delete via status update, the remote's
// required shape for removing a batch.
func (c *Client) DeleteBatchPayment(ctx context.Context, id string) (BatchPayment, error) {
	body := struct {
		BatchPaymentID string `json:"BatchPaymentID"`
		Status         string `json:"Status"`
	}{BatchPaymentID: id, Status: BatchPaymentStatusDeleted}

	var env batchPaymentsEnvelope
	if err := c.do(ctx, http.MethodPost, "/BatchPayments", nil, body, &env); err != nil {
		return BatchPayment{}, err
	}
	w, err := firstOf(env.BatchPayments, "batch payment", id)
	if err != nil {
		return BatchPayment{}, err
	}
	return batchPaymentFromWire(w), nil
}
