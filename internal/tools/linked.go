package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type linkedTransactionArgs struct {
	SourceTransactionID *string `json:"sourceTransactionId,omitempty" jsonschema:"Source document identifier: a bill or spend money transaction (UUID)"`
	SourceLineItemID    *string `json:"sourceLineItemId,omitempty" jsonschema:"Billable line item on the source document (UUID)"`
	ContactID           *string `json:"contactId,omitempty" jsonschema:"Customer the expense will be on-charged to (UUID)"`
	TargetTransactionID *string `json:"targetTransactionId,omitempty" jsonschema:"Target customer invoice (UUID)"`
	TargetLineItemID    *string `json:"targetLineItemId,omitempty" jsonschema:"Line item on the target invoice (UUID)"`
	Status              *string `json:"status,omitempty" jsonschema:"DRAFT or APPROVED"`
}

func (a linkedTransactionArgs) input() xero.LinkedTransactionInput {
	return xero.LinkedTransactionInput{
		SourceTransactionID: a.SourceTransactionID,
		SourceLineItemID:    a.SourceLineItemID,
		ContactID:           a.ContactID,
		TargetTransactionID: a.TargetTransactionID,
		TargetLineItemID:    a.TargetLineItemID,
		Status:              a.Status,
	}
}

type updateLinkedTransactionArgs struct {
	ID string `json:"id" jsonschema:"Linked transaction identifier (UUID)"`
	linkedTransactionArgs
}

func (r *Registry) registerLinkedTransactions() {
	add(r, "list-linked-transactions", "List billable expense links, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListLinkedTransactions(ctx, in.options())
		})

	add(r, "get-linked-transaction", "Fetch one billable expense link by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetLinkedTransaction(ctx, in.ID)
		})

	add(r, "create-linked-transaction", "Mark a purchase line as a billable expense, optionally already assigned to a customer invoice.",
		func(ctx context.Context, c *xero.Client, in linkedTransactionArgs) (any, error) {
			return c.CreateLinkedTransaction(ctx, in.input())
		})

	add(r, "update-linked-transaction", "Update a billable expense link, typically to assign the target invoice.",
		func(ctx context.Context, c *xero.Client, in updateLinkedTransactionArgs) (any, error) {
			return c.UpdateLinkedTransaction(ctx, in.ID, in.input())
		})

	add(r, "delete-linked-transaction", "Permanently delete a billable expense link.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			if err := c.DeleteLinkedTransaction(ctx, in.ID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "deleted"}, nil
		})
}
