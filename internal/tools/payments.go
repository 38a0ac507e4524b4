package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type paymentArgs struct {
	InvoiceID   *string  `json:"invoiceId,omitempty" jsonschema:"Invoice the payment applies to (UUID)"`
	AccountID   *string  `json:"accountId,omitempty" jsonschema:"Bank account identifier (UUID). Either this or accountCode"`
	AccountCode *string  `json:"accountCode,omitempty" jsonschema:"Bank account code. Either this or accountId"`
	Date        *string  `json:"date,omitempty" jsonschema:"Payment date (YYYY-MM-DD)"`
	Amount      *float64 `json:"amount,omitempty" jsonschema:"Amount paid"`
	Reference   *string  `json:"reference,omitempty" jsonschema:"Free-text reference"`
}

func (a paymentArgs) input() xero.PaymentInput {
	return xero.PaymentInput{
		InvoiceID:   a.InvoiceID,
		AccountID:   a.AccountID,
		AccountCode: a.AccountCode,
		Date:        a.Date,
		Amount:      dec(a.Amount),
		Reference:   a.Reference,
	}
}

type batchPaymentArgs struct {
	AccountID *string       `json:"accountId,omitempty" jsonschema:"Bank account the batch pays from (UUID)"`
	Date      *string       `json:"date,omitempty" jsonschema:"Batch date (YYYY-MM-DD)"`
	Reference *string       `json:"reference,omitempty" jsonschema:"Free-text reference"`
	Payments  []paymentArgs `json:"payments,omitempty" jsonschema:"Individual invoice payments in the batch"`
}

func (a batchPaymentArgs) input() xero.BatchPaymentInput {
	in := xero.BatchPaymentInput{
		AccountID: a.AccountID,
		Date:      a.Date,
		Reference: a.Reference,
	}
	for _, p := range a.Payments {
		in.Payments = append(in.Payments, p.input())
	}
	return in
}

func (r *Registry) registerPayments() {
	add(r, "list-payments", "List payments, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListPayments(ctx, in.options())
		})

	add(r, "get-payment", "Fetch one payment by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetPayment(ctx, in.ID)
		})

	add(r, "create-payment", "Apply a payment to an invoice from a bank-enabled account.",
		func(ctx context.Context, c *xero.Client, in paymentArgs) (any, error) {
			return c.CreatePayment(ctx, in.input())
		})

	add(r, "delete-payment", "Delete a payment. The invoice it paid reverts to owing the amount.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeletePayment(ctx, in.ID)
		})

	add(r, "list-batch-payments", "List batch payments.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListBatchPayments(ctx, in.options())
		})

	add(r, "get-batch-payment", "Fetch one batch payment with its member payments.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetBatchPayment(ctx, in.ID)
		})

	add(r, "create-batch-payment", "Pay several invoices in one bank transaction.",
		func(ctx context.Context, c *xero.Client, in batchPaymentArgs) (any, error) {
			return c.CreateBatchPayment(ctx, in.input())
		})

	add(r, "delete-batch-payment", "Delete a batch payment and its member payments.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeleteBatchPayment(ctx, in.ID)
		})
}
