package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type accountArgs struct {
	Code                    *string `json:"code,omitempty" jsonschema:"Account code, unique within the chart"`
	Name                    *string `json:"name,omitempty" jsonschema:"Account name"`
	Type                    *string `json:"type,omitempty" jsonschema:"Account type, e.g. REVENUE, EXPENSE, BANK, CURRENT"`
	TaxType                 *string `json:"taxType,omitempty" jsonschema:"Default tax type code"`
	Description             *string `json:"description,omitempty" jsonschema:"Account description"`
	EnablePaymentsToAccount *bool   `json:"enablePaymentsToAccount,omitempty" jsonschema:"Allow payments to post to this account"`
	ShowInExpenseClaims     *bool   `json:"showInExpenseClaims,omitempty" jsonschema:"Offer this account in expense claims"`
	BankAccountNumber       *string `json:"bankAccountNumber,omitempty" jsonschema:"Bank account number, required for BANK type"`
	BankAccountType         *string `json:"bankAccountType,omitempty" jsonschema:"BANK, CREDITCARD or PAYPAL"`
	CurrencyCode            *string `json:"currencyCode,omitempty" jsonschema:"ISO currency code for bank accounts"`
}

func (a accountArgs) input() xero.AccountInput {
	return xero.AccountInput{
		Code:                    a.Code,
		Name:                    a.Name,
		Type:                    a.Type,
		TaxType:                 a.TaxType,
		Description:             a.Description,
		EnablePaymentsToAccount: a.EnablePaymentsToAccount,
		ShowInExpenseClaims:     a.ShowInExpenseClaims,
		BankAccountNumber:       a.BankAccountNumber,
		BankAccountType:         a.BankAccountType,
		CurrencyCode:            a.CurrencyCode,
	}
}

type updateAccountArgs struct {
	ID string `json:"id" jsonschema:"Account identifier (UUID)"`
	accountArgs
}

type journalLineItemArgs struct {
	LineAmount  float64        `json:"lineAmount" jsonschema:"Signed amount. Debits positive, credits negative; lines must sum to zero"`
	AccountCode string         `json:"accountCode" jsonschema:"Account code the line posts to"`
	Description *string        `json:"description,omitempty" jsonschema:"Line description"`
	TaxType     *string        `json:"taxType,omitempty" jsonschema:"Tax type code"`
	Tracking    []trackingArgs `json:"tracking,omitempty" jsonschema:"Tracking category assignments"`
}

func (a journalLineItemArgs) input() xero.JournalLineInput {
	amount := a.LineAmount
	code := a.AccountCode
	in := xero.JournalLineInput{
		LineAmount:  dec(&amount),
		AccountCode: &code,
		Description: a.Description,
		TaxType:     a.TaxType,
	}
	for _, t := range a.Tracking {
		in.Tracking = append(in.Tracking, xero.LineTracking{Name: t.Name, Option: t.Option})
	}
	return in
}

type manualJournalArgs struct {
	Narration              *string               `json:"narration,omitempty" jsonschema:"Journal description shown in reports"`
	Date                   *string               `json:"date,omitempty" jsonschema:"Posting date (YYYY-MM-DD)"`
	Status                 *string               `json:"status,omitempty" jsonschema:"DRAFT or POSTED"`
	LineAmountTypes        *string               `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	JournalLines           []journalLineItemArgs `json:"journalLines,omitempty" jsonschema:"Journal lines; amounts must sum to zero"`
	ShowOnCashBasisReports *bool                 `json:"showOnCashBasisReports,omitempty" jsonschema:"Include the journal in cash basis reports"`
}

func (a manualJournalArgs) input() xero.ManualJournalInput {
	in := xero.ManualJournalInput{
		Narration:              a.Narration,
		Date:                   a.Date,
		Status:                 a.Status,
		LineAmountTypes:        a.LineAmountTypes,
		ShowOnCashBasisReports: a.ShowOnCashBasisReports,
	}
	for _, l := range a.JournalLines {
		in.JournalLines = append(in.JournalLines, l.input())
	}
	return in
}

type updateManualJournalArgs struct {
	ID string `json:"id" jsonschema:"Manual journal identifier (UUID)"`
	manualJournalArgs
}

type listJournalsArgs struct {
	Offset       int  `json:"offset,omitempty" jsonschema:"Return journals with a journal number greater than this. The endpoint pages by offset, not page number"`
	PaymentsOnly bool `json:"paymentsOnly,omitempty" jsonschema:"Only journals on a cash basis"`
}

func (r *Registry) registerLedger() {
	add(r, "list-accounts", "List the chart of accounts.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListAccounts(ctx, in.options())
		})

	add(r, "get-account", "Fetch one account by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetAccount(ctx, in.ID)
		})

	add(r, "create-account", "Add an account to the chart. Code, name and type are required by the API.",
		func(ctx context.Context, c *xero.Client, in accountArgs) (any, error) {
			return c.CreateAccount(ctx, in.input())
		})

	add(r, "update-account", "Update an account. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateAccountArgs) (any, error) {
			return c.UpdateAccount(ctx, in.ID, in.input())
		})

	add(r, "archive-account", "Archive an account. System accounts cannot be archived.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.ArchiveAccount(ctx, in.ID)
		})

	add(r, "list-manual-journals", "List manual journals, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListManualJournals(ctx, in.options())
		})

	add(r, "get-manual-journal", "Fetch one manual journal by identifier, lines included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetManualJournal(ctx, in.ID)
		})

	add(r, "create-manual-journal", "Post a manual journal. Line amounts must sum to zero; the API enforces the balance.",
		func(ctx context.Context, c *xero.Client, in manualJournalArgs) (any, error) {
			return c.CreateManualJournal(ctx, in.input())
		})

	add(r, "update-manual-journal", "Update a manual journal. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateManualJournalArgs) (any, error) {
			return c.UpdateManualJournal(ctx, in.ID, in.input())
		})

	add(r, "void-manual-journal", "Void a posted manual journal.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.VoidManualJournal(ctx, in.ID)
		})

	add(r, "list-journals", "List the ledger journals the API derives from every posted document. Read-only.",
		func(ctx context.Context, c *xero.Client, in listJournalsArgs) (any, error) {
			return c.ListJournals(ctx, xero.JournalListOptions{Offset: in.Offset, PaymentsOnly: in.PaymentsOnly})
		})

	add(r, "get-journal", "Fetch one ledger journal by identifier or journal number.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetJournal(ctx, in.ID)
		})
}
