package xero

import (
	"context"
	"net/http"
	"net/url"
)

// Linked transaction statuses.
const (
	LinkedTransactionStatusDraft    = "DRAFT"
	LinkedTransactionStatusApproved = "APPROVED"
	LinkedTransactionStatusOnDraft  = "ONDRAFT"
	LinkedTransactionStatusBilled   = "BILLED"
	LinkedTransactionStatusVoided   = "VOIDED"
)

// LinkedTransaction links a billable expense line on a source document
// to a target customer invoice.
type LinkedTransaction struct {
	ID                  string `json:"id"`
	SourceTransactionID string `json:"sourceTransactionId,omitempty"`
	SourceLineItemID    string `json:"sourceLineItemId,omitempty"`
	ContactID           string `json:"contactId,omitempty"`
	TargetTransactionID string `json:"targetTransactionId,omitempty"`
	TargetLineItemID    string `json:"targetLineItemId,omitempty"`
	Status              string `json:"status,omitempty"`
	Type                string `json:"type,omitempty"`
	UpdatedDateUTC      string `json:"updatedDateUtc,omitempty"`
}

type wireLinkedTransaction struct {
	LinkedTransactionID *string `json:"LinkedTransactionID,omitempty"`
	SourceTransactionID *string `json:"SourceTransactionID,omitempty"`
	SourceLineItemID    *string `json:"SourceLineItemID,omitempty"`
	ContactID           *string `json:"ContactID,omitempty"`
	TargetTransactionID *string `json:"TargetTransactionID,omitempty"`
	TargetLineItemID    *string `json:"TargetLineItemID,omitempty"`
	Status              *string `json:"Status,omitempty"`
	Type                *string `json:"Type,omitempty"`
	UpdatedDateUTC      *string `json:"UpdatedDateUTC,omitempty"`
}

func linkedTransactionFromWire(w wireLinkedTransaction) LinkedTransaction {
	return LinkedTransaction{
		ID:                  deref(w.LinkedTransactionID),
		SourceTransactionID: deref(w.SourceTransactionID),
		SourceLineItemID:    deref(w.SourceLineItemID),
		ContactID:           deref(w.ContactID),
		TargetTransactionID: deref(w.TargetTransactionID),
		TargetLineItemID:    deref(w.TargetLineItemID),
		Status:              deref(w.Status),
		Type:                deref(w.Type),
		UpdatedDateUTC:      deref(w.UpdatedDateUTC),
	}
}

// LinkedTransactionInput is the sparse write shape for linked
// transactions.
type LinkedTransactionInput struct {
	SourceTransactionID *string `json:"sourceTransactionId,omitempty"`
	SourceLineItemID    *string `json:"sourceLineItemId,omitempty"`
	ContactID           *string `json:"contactId,omitempty"`
	TargetTransactionID *string `json:"targetTransactionId,omitempty"`
	TargetLineItemID    *string `json:"targetLineItemId,omitempty"`
	Status              *string `json:"status,omitempty"`
}

func (in LinkedTransactionInput) toWire() wireLinkedTransaction {
	return wireLinkedTransaction{
		SourceTransactionID: in.SourceTransactionID,
		SourceLineItemID:    in.SourceLineItemID,
		ContactID:           in.ContactID,
		TargetTransactionID: in.TargetTransactionID,
		TargetLineItemID:    in.TargetLineItemID,
		Status:              in.Status,
	}
}

type linkedTransactionsEnvelope struct {
	LinkedTransactions []wireLinkedTransaction `json:"LinkedTransactions"`
}

// ListLinkedTransactions returns one page of linked transactions.
func (c *Client) ListLinkedTransactions(ctx context.Context, opt ListOptions) (Page[LinkedTransaction], error) {
	var env linkedTransactionsEnvelope
	if err := c.do(ctx, http.MethodGet, "/LinkedTransactions", opt.values(), nil, &env); err != nil {
		return Page[LinkedTransaction]{}, err
	}
	return newPage(mapSlice(env.LinkedTransactions, linkedTransactionFromWire), opt.page()), nil
}

// GetLinkedTransaction fetches a single linked transaction by
// identifier.
func (c *Client) GetLinkedTransaction(ctx context.Context, id string) (LinkedTransaction, error) {
	var env linkedTransactionsEnvelope
	if err := c.do(ctx, http.MethodGet, "/LinkedTransactions/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return LinkedTransaction{}, err
	}
	w, err := firstOf(env.LinkedTransactions, "linked transaction", id)
	if err != nil {
		return LinkedTransaction{}, err
	}
	return linkedTransactionFromWire(w), nil
}

// CreateLinkedTransaction links a source line item, optionally straight
// onto a target invoice.
func (c *Client) CreateLinkedTransaction(ctx context.Context, in LinkedTransactionInput) (LinkedTransaction, error) {
	var env linkedTransactionsEnvelope
	if err := c.do(ctx, http.MethodPost, "/LinkedTransactions", nil, in.toWire(), &env); err != nil {
		return LinkedTransaction{}, err
	}
	w, err := firstOf(env.LinkedTransactions, "linked transaction", "")
	if err != nil {
		return LinkedTransaction{}, err
	}
	return linkedTransactionFromWire(w), nil
}

// UpdateLinkedTransaction sparse-updates a linked transaction, most
// often to assign the target invoice.
func (c *Client) UpdateLinkedTransaction(ctx context.Context, id string, in LinkedTransactionInput) (LinkedTransaction, error) {
	var env linkedTransactionsEnvelope
	if err := c.do(ctx, http.MethodPost, "/LinkedTransactions/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return LinkedTransaction{}, err
	}
	w, err := firstOf(env.LinkedTransactions, "linked transaction", id)
	if err != nil {
		return LinkedTransaction{}, err
	}
	return linkedTransactionFromWire(w), nil
}

// DeleteLinkedTransaction removes a linked transaction. True HTTP
// deletion.
func (c *Client) DeleteLinkedTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/LinkedTransactions/"+url.PathEscape(id), nil, nil, nil)
}
