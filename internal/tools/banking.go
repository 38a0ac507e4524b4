package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type bankTransactionArgs struct {
	Type            *string        `json:"type,omitempty" jsonschema:"SPEND or RECEIVE"`
	ContactID       *string        `json:"contactId,omitempty" jsonschema:"Contact identifier (UUID)"`
	BankAccountID   *string        `json:"bankAccountId,omitempty" jsonschema:"Bank account identifier (UUID). Either this or bankAccountCode"`
	BankAccountCode *string        `json:"bankAccountCode,omitempty" jsonschema:"Bank account code. Either this or bankAccountId"`
	Date            *string        `json:"date,omitempty" jsonschema:"Transaction date (YYYY-MM-DD)"`
	Reference       *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	LineAmountTypes *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	LineItems       []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Transaction lines"`
	CurrencyCode    *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
}

func (a bankTransactionArgs) input() xero.BankTransactionInput {
	return xero.BankTransactionInput{
		Type:            a.Type,
		ContactID:       a.ContactID,
		BankAccountID:   a.BankAccountID,
		BankAccountCode: a.BankAccountCode,
		Date:            a.Date,
		Reference:       a.Reference,
		LineAmountTypes: a.LineAmountTypes,
		LineItems:       lineItemInputs(a.LineItems),
		CurrencyCode:    a.CurrencyCode,
	}
}

type updateBankTransactionArgs struct {
	ID string `json:"id" jsonschema:"Bank transaction identifier (UUID)"`
	bankTransactionArgs
}

type bankTransferArgs struct {
	FromBankAccountID   *string `json:"fromBankAccountId,omitempty" jsonschema:"Source account identifier (UUID). Either this or fromBankAccountCode"`
	FromBankAccountCode *string `json:"fromBankAccountCode,omitempty" jsonschema:"Source account code"`
	ToBankAccountID     *string `json:"toBankAccountId,omitempty" jsonschema:"Destination account identifier (UUID). Either this or toBankAccountCode"`
	ToBankAccountCode   *string `json:"toBankAccountCode,omitempty" jsonschema:"Destination account code"`
	Amount              float64 `json:"amount" jsonschema:"Amount to move"`
	Date                *string `json:"date,omitempty" jsonschema:"Transfer date (YYYY-MM-DD)"`
}

func (a bankTransferArgs) input() xero.BankTransferInput {
	amount := a.Amount
	return xero.BankTransferInput{
		FromBankAccountID:   a.FromBankAccountID,
		FromBankAccountCode: a.FromBankAccountCode,
		ToBankAccountID:     a.ToBankAccountID,
		ToBankAccountCode:   a.ToBankAccountCode,
		Amount:              dec(&amount),
		Date:                a.Date,
	}
}

func (r *Registry) registerBanking() {
	add(r, "list-bank-transactions", "List spend and receive money transactions, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListBankTransactions(ctx, in.options())
		})

	add(r, "get-bank-transaction", "Fetch one bank transaction by identifier, lines included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetBankTransaction(ctx, in.ID)
		})

	add(r, "create-bank-transaction", "Record a spend or receive money transaction against a bank account.",
		func(ctx context.Context, c *xero.Client, in bankTransactionArgs) (any, error) {
			return c.CreateBankTransaction(ctx, in.input())
		})

	add(r, "update-bank-transaction", "Update a bank transaction. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateBankTransactionArgs) (any, error) {
			return c.UpdateBankTransaction(ctx, in.ID, in.input())
		})

	add(r, "delete-bank-transaction", "Delete a bank transaction.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeleteBankTransaction(ctx, in.ID)
		})

	add(r, "list-bank-transfers", "List transfers between bank accounts.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListBankTransfers(ctx, in.options())
		})

	add(r, "get-bank-transfer", "Fetch one bank transfer by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetBankTransfer(ctx, in.ID)
		})

	add(r, "create-bank-transfer", "Move money between two bank-enabled accounts.",
		func(ctx context.Context, c *xero.Client, in bankTransferArgs) (any, error) {
			return c.CreateBankTransfer(ctx, in.input())
		})
}
