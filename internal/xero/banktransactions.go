package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Bank transaction types.
const (
	BankTransactionTypeSpend   = "SPEND"
	BankTransactionTypeReceive = "RECEIVE"
)

// Bank transaction statuses.
const (
	BankTransactionStatusAuthorised = "AUTHORISED"
	BankTransactionStatusDeleted    = "DELETED"
)

// BankTransaction is a spend or receive money record against a bank
// account.
type BankTransaction struct {
	ID              string           `json:"id"`
	Type            string           `json:"type,omitempty"`
	Contact         *ContactRef      `json:"contact,omitempty"`
	BankAccount     *AccountRef      `json:"bankAccount,omitempty"`
	Date            string           `json:"date,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Status          string           `json:"status,omitempty"`
	LineAmountTypes string           `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItem       `json:"lineItems,omitempty"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	IsReconciled    *bool            `json:"isReconciled,omitempty"`
	SubTotal        *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax        *decimal.Decimal `json:"totalTax,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
	UpdatedDateUTC  string           `json:"updatedDateUtc,omitempty"`
}

type wireBankTransaction struct {
	BankTransactionID *string          `json:"BankTransactionID,omitempty"`
	Type              *string          `json:"Type,omitempty"`
	Contact           *wireContactRef  `json:"Contact,omitempty"`
	BankAccount       *wireAccountRef  `json:"BankAccount,omitempty"`
	Date              *string          `json:"Date,omitempty"`
	Reference         *string          `json:"Reference,omitempty"`
	Status            *string          `json:"Status,omitempty"`
	LineAmountTypes   *string          `json:"LineAmountTypes,omitempty"`
	LineItems         []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode      *string          `json:"CurrencyCode,omitempty"`
	IsReconciled      *bool            `json:"IsReconciled,omitempty"`
	SubTotal          *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax          *decimal.Decimal `json:"TotalTax,omitempty"`
	Total             *decimal.Decimal `json:"Total,omitempty"`
	UpdatedDateUTC    *string          `json:"UpdatedDateUTC,omitempty"`
}

func bankTransactionFromWire(w wireBankTransaction) BankTransaction {
	return BankTransaction{
		ID:              deref(w.BankTransactionID),
		Type:            deref(w.Type),
		Contact:         contactRefFromWire(w.Contact),
		BankAccount:     accountRefFromWire(w.BankAccount),
		Date:            deref(w.Date),
		Reference:       deref(w.Reference),
		Status:          deref(w.Status),
		LineAmountTypes: deref(w.LineAmountTypes),
		LineItems:       mapSlice(w.LineItems, lineItemFromWire),
		CurrencyCode:    deref(w.CurrencyCode),
		IsReconciled:    w.IsReconciled,
		SubTotal:        w.SubTotal,
		TotalTax:        w.TotalTax,
		Total:           w.Total,
		UpdatedDateUTC:  deref(w.UpdatedDateUTC),
	}
}

// BankTransactionInput is the sparse write shape for bank transactions.
// BankAccountID or BankAccountCode identifies the account side.
type BankTransactionInput struct {
	Type            *string         `json:"type,omitempty"`
	ContactID       *string         `json:"contactId,omitempty"`
	BankAccountID   *string         `json:"bankAccountId,omitempty"`
	BankAccountCode *string         `json:"bankAccountCode,omitempty"`
	Date            *string         `json:"date,omitempty"`
	Reference       *string         `json:"reference,omitempty"`
	Status          *string         `json:"status,omitempty"`
	LineAmountTypes *string         `json:"lineAmountTypes,omitempty"`
	LineItems       []LineItemInput `json:"lineItems,omitempty"`
	CurrencyCode    *string         `json:"currencyCode,omitempty"`
}

func (in BankTransactionInput) toWire() wireBankTransaction {
	w := wireBankTransaction{
		Type:            in.Type,
		Contact:         contactRefToWire(in.ContactID),
		Date:            in.Date,
		Reference:       in.Reference,
		Status:          in.Status,
		LineAmountTypes: in.LineAmountTypes,
		CurrencyCode:    in.CurrencyCode,
	}
	if in.BankAccountID != nil || in.BankAccountCode != nil {
		w.BankAccount = &wireAccountRef{AccountID: in.BankAccountID, Code: in.BankAccountCode}
	}
	if in.LineItems != nil {
		w.LineItems = lineItemsToWire(in.LineItems)
	}
	return w
}

type bankTransactionsEnvelope struct {
	BankTransactions []wireBankTransaction `json:"BankTransactions"`
}

// ListBankTransactions returns one page of bank transactions.
func (c *Client) ListBankTransactions(ctx context.Context, opt ListOptions) (Page[BankTransaction], error) {
	var env bankTransactionsEnvelope
	if err := c.do(ctx, http.MethodGet, "/BankTransactions", opt.values(), nil, &env); err != nil {
		return Page[BankTransaction]{}, err
	}
	return newPage(mapSlice(env.BankTransactions, bankTransactionFromWire), opt.page()), nil
}

// GetBankTransaction fetches a single bank transaction by identifier.
func (c *Client) GetBankTransaction(ctx context.Context, id string) (BankTransaction, error) {
	var env bankTransactionsEnvelope
	if err := c.do(ctx, http.MethodGet, "/BankTransactions/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return BankTransaction{}, err
	}
	w, err := firstOf(env.BankTransactions, "bank transaction", id)
	if err != nil {
		return BankTransaction{}, err
	}
	return bankTransactionFromWire(w), nil
}

// CreateBankTransaction submits a new bank transaction.
func (c *Client) CreateBankTransaction(ctx context.Context, in BankTransactionInput) (BankTransaction, error) {
	var env bankTransactionsEnvelope
	if err := c.do(ctx, http.MethodPost, "/BankTransactions", nil, in.toWire(), &env); err != nil {
		return BankTransaction{}, err
	}
	w, err := firstOf(env.BankTransactions, "bank transaction", "")
	if err != nil {
		return BankTransaction{}, err
	}
	return bankTransactionFromWire(w), nil
}

// UpdateBankTransaction applies a sparse update to an existing bank
// transaction.
func (c *Client) UpdateBankTransaction(ctx context.Context, id string, in BankTransactionInput) (BankTransaction, error) {
	var env bankTransactionsEnvelope
	if err := c.do(ctx, http.MethodPost, "/BankTransactions/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return BankTransaction{}, err
	}
	w, err := firstOf(env.BankTransactions, "bank transaction", id)
	if err != nil {
		return BankTransaction{}, err
	}
	return bankTransactionFromWire(w), nil
}

// DeleteBankTransaction requests the DELETED transition.
func (c *Client) DeleteBankTransaction(ctx context.Context, id string) (BankTransaction, error) {
	return c.UpdateBankTransaction(ctx, id, BankTransactionInput{Status: ptr(BankTransactionStatusDeleted)})
}
