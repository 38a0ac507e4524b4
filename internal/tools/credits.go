package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type creditNoteArgs struct {
	Type            *string        `json:"type,omitempty" jsonschema:"ACCRECCREDIT (issued to a customer) or ACCPAYCREDIT (received from a supplier)"`
	ContactID       *string        `json:"contactId,omitempty" jsonschema:"Contact identifier (UUID)"`
	Reference       *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	Date            *string        `json:"date,omitempty" jsonschema:"Issue date (YYYY-MM-DD)"`
	Status          *string        `json:"status,omitempty" jsonschema:"DRAFT, SUBMITTED or AUTHORISED"`
	LineAmountTypes *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	LineItems       []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Credit note lines"`
	CurrencyCode    *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
}

func (a creditNoteArgs) input() xero.CreditNoteInput {
	return xero.CreditNoteInput{
		Type:            a.Type,
		ContactID:       a.ContactID,
		Reference:       a.Reference,
		Date:            a.Date,
		Status:          a.Status,
		LineAmountTypes: a.LineAmountTypes,
		LineItems:       lineItemInputs(a.LineItems),
		CurrencyCode:    a.CurrencyCode,
	}
}

type updateCreditNoteArgs struct {
	ID string `json:"id" jsonschema:"Credit note identifier (UUID)"`
	creditNoteArgs
}

func (r *Registry) registerCredits() {
	add(r, "list-credit-notes", "List credit notes, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListCreditNotes(ctx, in.options())
		})

	add(r, "get-credit-note", "Fetch one credit note by identifier, allocations included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetCreditNote(ctx, in.ID)
		})

	add(r, "create-credit-note", "Create a credit note against a contact.",
		func(ctx context.Context, c *xero.Client, in creditNoteArgs) (any, error) {
			return c.CreateCreditNote(ctx, in.input())
		})

	add(r, "update-credit-note", "Update a credit note. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateCreditNoteArgs) (any, error) {
			return c.UpdateCreditNote(ctx, in.ID, in.input())
		})

	add(r, "allocate-credit-note", "Apply part of a credit note's remaining credit against an invoice. Allocating more than the remaining credit fails.",
		func(ctx context.Context, c *xero.Client, in allocationArgs) (any, error) {
			return c.AllocateCreditNote(ctx, in.ID, in.input())
		})

	add(r, "list-prepayments", "List prepayments, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListPrepayments(ctx, in.options())
		})

	add(r, "get-prepayment", "Fetch one prepayment by identifier. Prepayments are created from bank transactions, not through this server.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetPrepayment(ctx, in.ID)
		})

	add(r, "allocate-prepayment", "Apply part of a prepayment's remaining credit against an invoice.",
		func(ctx context.Context, c *xero.Client, in allocationArgs) (any, error) {
			return c.AllocatePrepayment(ctx, in.ID, in.input())
		})

	add(r, "list-overpayments", "List overpayments, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListOverpayments(ctx, in.options())
		})

	add(r, "get-overpayment", "Fetch one overpayment by identifier. Overpayments are created from bank transactions, not through this server.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetOverpayment(ctx, in.ID)
		})

	add(r, "allocate-overpayment", "Apply part of an overpayment's remaining credit against an invoice.",
		func(ctx context.Context, c *xero.Client, in allocationArgs) (any, error) {
			return c.AllocateOverpayment(ctx, in.ID, in.input())
		})
}
