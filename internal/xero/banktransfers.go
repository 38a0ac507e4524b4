package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// BankTransfer moves money between two bank-enabled accounts. The
// remote creates the matching bank transactions on both sides.
type BankTransfer struct {
	ID               string           `json:"id"`
	FromBankAccount  *AccountRef      `json:"fromBankAccount,omitempty"`
	ToBankAccount    *AccountRef      `json:"toBankAccount,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Date             string           `json:"date,omitempty"`
	CurrencyRate     *decimal.Decimal `json:"currencyRate,omitempty"`
	FromIsReconciled *bool            `json:"fromIsReconciled,omitempty"`
	ToIsReconciled   *bool            `json:"toIsReconciled,omitempty"`
	CreatedDateUTC   string           `json:"createdDateUtc,omitempty"`
}

type wireBankTransfer struct {
	BankTransferID   *string          `json:"BankTransferID,omitempty"`
	FromBankAccount  *wireAccountRef  `json:"FromBankAccount,omitempty"`
	ToBankAccount    *wireAccountRef  `json:"ToBankAccount,omitempty"`
	Amount           *decimal.Decimal `json:"Amount,omitempty"`
	Date             *string          `json:"Date,omitempty"`
	CurrencyRate     *decimal.Decimal `json:"CurrencyRate,omitempty"`
	FromIsReconciled *bool            `json:"FromIsReconciled,omitempty"`
	ToIsReconciled   *bool            `json:"ToIsReconciled,omitempty"`
	CreatedDateUTC   *string          `json:"CreatedDateUTC,omitempty"`
}

func bankTransferFromWire(w wireBankTransfer) BankTransfer {
	return BankTransfer{
		ID:               deref(w.BankTransferID),
		FromBankAccount:  accountRefFromWire(w.FromBankAccount),
		ToBankAccount:    accountRefFromWire(w.ToBankAccount),
		Amount:           w.Amount,
		Date:             deref(w.Date),
		CurrencyRate:     w.CurrencyRate,
		FromIsReconciled: w.FromIsReconciled,
		ToIsReconciled:   w.ToIsReconciled,
		CreatedDateUTC:   deref(w.CreatedDateUTC),
	}
}

// BankTransferInput creates a transfer. Accounts may be identified by
// ID or code, the remote accepts either.
type BankTransferInput struct {
	FromBankAccountID   *string          `json:"fromBankAccountId,omitempty"`
	FromBankAccountCode *string          `json:"fromBankAccountCode,omitempty"`
	ToBankAccountID     *string          `json:"toBankAccountId,omitempty"`
	ToBankAccountCode   *string          `json:"toBankAccountCode,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Date                *string          `json:"date,omitempty"`
}

func (in BankTransferInput) toWire() wireBankTransfer {
	w := wireBankTransfer{
		Amount: in.Amount,
		Date:   in.Date,
	}
	if in.FromBankAccountID != nil || in.FromBankAccountCode != nil {
		w.FromBankAccount = &wireAccountRef{AccountID: in.FromBankAccountID, Code: in.FromBankAccountCode}
	}
	if in.ToBankAccountID != nil || in.ToBankAccountCode != nil {
		w.ToBankAccount = &wireAccountRef{AccountID: in.ToBankAccountID, Code: in.ToBankAccountCode}
	}
	return w
}

type bankTransfersEnvelope struct {
	BankTransfers []wireBankTransfer `json:"BankTransfers"`
}

// ListBankTransfers returns the full transfer collection; the endpoint
// is not paginated.
func (c *Client) ListBankTransfers(ctx context.Context, opt ListOptions) ([]BankTransfer, error) {
	var env bankTransfersEnvelope
	if err := c.do(ctx, http.MethodGet, "/BankTransfers", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.BankTransfers, bankTransferFromWire), nil
}

// GetBankTransfer fetches a single transfer by identifier.
func (c *Client) GetBankTransfer(ctx context.Context, id string) (BankTransfer, error) {
	var env bankTransfersEnvelope
	if err := c.do(ctx, http.MethodGet, "/BankTransfers/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return BankTransfer{}, err
	}
	w, err := firstOf(env.BankTransfers, "bank transfer", id)
	if err != nil {
		return BankTransfer{}, err
	}
	return bankTransferFromWire(w), nil
}

// CreateBankTransfer submits a new transfer. Xero creates via PUT here.
func (c *Client) CreateBankTransfer(ctx context.Context, in BankTransferInput) (BankTransfer, error) {
	var env bankTransfersEnvelope
	if err := c.do(ctx, http.MethodPut, "/BankTransfers", nil, in.toWire(), &env); err != nil {
		return BankTransfer{}, err
	}
	w, err := firstOf(env.BankTransfers, "bank transfer", "")
	if err != nil {
		return BankTransfer{}, err
	}
	return bankTransferFromWire(w), nil
}
