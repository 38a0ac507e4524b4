package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type listInvoicesArgs struct {
	listArgs
	SummaryOnly bool `json:"summaryOnly,omitempty" jsonschema:"Omit line items and contact detail for faster listing"`
}

type invoiceArgs struct {
	Type            *string        `json:"type,omitempty" jsonschema:"ACCREC (sales invoice) or ACCPAY (bill)"`
	ContactID       *string        `json:"contactId,omitempty" jsonschema:"Contact identifier (UUID)"`
	Number          *string        `json:"number,omitempty" jsonschema:"Invoice number"`
	Reference       *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	Date            *string        `json:"date,omitempty" jsonschema:"Issue date (YYYY-MM-DD)"`
	DueDate         *string        `json:"dueDate,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	Status          *string        `json:"status,omitempty" jsonschema:"DRAFT, SUBMITTED or AUTHORISED"`
	LineAmountTypes *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	LineItems       []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Invoice lines"`
	CurrencyCode    *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	BrandingThemeID *string        `json:"brandingThemeId,omitempty" jsonschema:"Branding theme identifier (UUID)"`
}

func (a invoiceArgs) input() xero.InvoiceInput {
	return xero.InvoiceInput{
		Type:            a.Type,
		ContactID:       a.ContactID,
		Number:          a.Number,
		Reference:       a.Reference,
		Date:            a.Date,
		DueDate:         a.DueDate,
		Status:          a.Status,
		LineAmountTypes: a.LineAmountTypes,
		LineItems:       lineItemInputs(a.LineItems),
		CurrencyCode:    a.CurrencyCode,
		BrandingThemeID: a.BrandingThemeID,
	}
}

type updateInvoiceArgs struct {
	ID string `json:"id" jsonschema:"Invoice identifier (UUID)"`
	invoiceArgs
}

type scheduleArgs struct {
	Period      *int    `json:"period,omitempty" jsonschema:"How many units between invoices, e.g. 1"`
	Unit        *string `json:"unit,omitempty" jsonschema:"WEEKLY or MONTHLY"`
	DueDate     *int    `json:"dueDate,omitempty" jsonschema:"Day component of the due date rule"`
	DueDateType *string `json:"dueDateType,omitempty" jsonschema:"Due date rule, e.g. DAYSAFTERBILLDATE or OFFOLLOWINGMONTH"`
	StartDate   *string `json:"startDate,omitempty" jsonschema:"Date the schedule starts (YYYY-MM-DD)"`
	EndDate     *string `json:"endDate,omitempty" jsonschema:"Date the schedule ends (YYYY-MM-DD)"`
}

func (a *scheduleArgs) input() *xero.ScheduleInput {
	if a == nil {
		return nil
	}
	return &xero.ScheduleInput{
		Period:      a.Period,
		Unit:        a.Unit,
		DueDate:     a.DueDate,
		DueDateType: a.DueDateType,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
	}
}

type repeatingInvoiceArgs struct {
	Type               *string        `json:"type,omitempty" jsonschema:"ACCREC or ACCPAY"`
	ContactID          *string        `json:"contactId,omitempty" jsonschema:"Contact identifier (UUID)"`
	Schedule           *scheduleArgs  `json:"schedule,omitempty" jsonschema:"Generation schedule"`
	LineItems          []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Template lines"`
	LineAmountTypes    *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	Reference          *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	BrandingThemeID    *string        `json:"brandingThemeId,omitempty" jsonschema:"Branding theme identifier (UUID)"`
	CurrencyCode       *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	Status             *string        `json:"status,omitempty" jsonschema:"DRAFT or AUTHORISED"`
	ApprovedForSending *bool          `json:"approvedForSending,omitempty" jsonschema:"Email generated invoices automatically"`
}

func (a repeatingInvoiceArgs) input() xero.RepeatingInvoiceInput {
	return xero.RepeatingInvoiceInput{
		Type:               a.Type,
		ContactID:          a.ContactID,
		Schedule:           a.Schedule.input(),
		LineItems:          lineItemInputs(a.LineItems),
		LineAmountTypes:    a.LineAmountTypes,
		Reference:          a.Reference,
		BrandingThemeID:    a.BrandingThemeID,
		CurrencyCode:       a.CurrencyCode,
		Status:             a.Status,
		ApprovedForSending: a.ApprovedForSending,
	}
}

type updateRepeatingInvoiceArgs struct {
	ID string `json:"id" jsonschema:"Repeating invoice identifier (UUID)"`
	repeatingInvoiceArgs
}

func (r *Registry) registerInvoices() {
	add(r, "list-invoices", "List invoices and bills, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listInvoicesArgs) (any, error) {
			return c.ListInvoices(ctx, xero.InvoiceListOptions{ListOptions: in.options(), SummaryOnly: in.SummaryOnly})
		})

	add(r, "get-invoice", "Fetch one invoice or bill by identifier, lines included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetInvoice(ctx, in.ID)
		})

	add(r, "create-invoice", "Create a sales invoice (ACCREC) or bill (ACCPAY).",
		func(ctx context.Context, c *xero.Client, in invoiceArgs) (any, error) {
			return c.CreateInvoice(ctx, in.input())
		})

	add(r, "update-invoice", "Update an invoice. Only the fields provided change; omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateInvoiceArgs) (any, error) {
			return c.UpdateInvoice(ctx, in.ID, in.input())
		})

	add(r, "void-invoice", "Void an approved invoice. Fails if the invoice has payments or credit applied.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.VoidInvoice(ctx, in.ID)
		})

	add(r, "delete-invoice", "Delete a draft or submitted invoice.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeleteInvoice(ctx, in.ID)
		})

	add(r, "list-repeating-invoices", "List repeating invoice templates.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListRepeatingInvoices(ctx, in.options())
		})

	add(r, "get-repeating-invoice", "Fetch one repeating invoice template by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetRepeatingInvoice(ctx, in.ID)
		})

	add(r, "create-repeating-invoice", "Create a repeating invoice template with a generation schedule.",
		func(ctx context.Context, c *xero.Client, in repeatingInvoiceArgs) (any, error) {
			return c.CreateRepeatingInvoice(ctx, in.input())
		})

	add(r, "update-repeating-invoice", "Update a repeating invoice template. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateRepeatingInvoiceArgs) (any, error) {
			return c.UpdateRepeatingInvoice(ctx, in.ID, in.input())
		})

	add(r, "delete-repeating-invoice", "Delete a repeating invoice template.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeleteRepeatingInvoice(ctx, in.ID)
		})
}
