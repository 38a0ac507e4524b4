package xero

import (
	"context"
	"net/http"
	"net/url"
)

// Account statuses.
const (
	AccountStatusActive   = "ACTIVE"
	AccountStatusArchived = "ARCHIVED"
)

// Account is one chart-of-accounts entry. Class and SystemAccount are
// remote-assigned and read-only.
type Account struct {
	ID                      string `json:"id"`
	Code                    string `json:"code,omitempty"`
	Name                    string `json:"name,omitempty"`
	Type                    string `json:"type,omitempty"`
	TaxType                 string `json:"taxType,omitempty"`
	Description             string `json:"description,omitempty"`
	Status                  string `json:"status,omitempty"`
	Class                   string `json:"class,omitempty"`
	SystemAccount           string `json:"systemAccount,omitempty"`
	EnablePaymentsToAccount *bool  `json:"enablePaymentsToAccount,omitempty"`
	ShowInExpenseClaims     *bool  `json:"showInExpenseClaims,omitempty"`
	BankAccountNumber       string `json:"bankAccountNumber,omitempty"`
	BankAccountType         string `json:"bankAccountType,omitempty"`
	CurrencyCode            string `json:"currencyCode,omitempty"`
	ReportingCode           string `json:"reportingCode,omitempty"`
	UpdatedDateUTC          string `json:"updatedDateUtc,omitempty"`
}

type wireAccount struct {
	AccountID               *string `json:"AccountID,omitempty"`
	Code                    *string `json:"Code,omitempty"`
	Name                    *string `json:"Name,omitempty"`
	Type                    *string `json:"Type,omitempty"`
	TaxType                 *string `json:"TaxType,omitempty"`
	Description             *string `json:"Description,omitempty"`
	Status                  *string `json:"Status,omitempty"`
	Class                   *string `json:"Class,omitempty"`
	SystemAccount           *string `json:"SystemAccount,omitempty"`
	EnablePaymentsToAccount *bool   `json:"EnablePaymentsToAccount,omitempty"`
	ShowInExpenseClaims     *bool   `json:"ShowInExpenseClaims,omitempty"`
	BankAccountNumber       *string `json:"BankAccountNumber,omitempty"`
	BankAccountType         *string `json:"BankAccountType,omitempty"`
	CurrencyCode            *string `json:"CurrencyCode,omitempty"`
	ReportingCode           *string `json:"ReportingCode,omitempty"`
	UpdatedDateUTC          *string `json:"UpdatedDateUTC,omitempty"`
}

func accountFromWire(w wireAccount) Account {
	return Account{
		ID:                      deref(w.AccountID),
		Code:                    deref(w.Code),
		Name:                    deref(w.Name),
		Type:                    deref(w.Type),
		TaxType:                 deref(w.TaxType),
		Description:             deref(w.Description),
		Status:                  deref(w.Status),
		Class:                   deref(w.Class),
		SystemAccount:           deref(w.SystemAccount),
		EnablePaymentsToAccount: w.EnablePaymentsToAccount,
		ShowInExpenseClaims:     w.ShowInExpenseClaims,
		BankAccountNumber:       deref(w.BankAccountNumber),
		BankAccountType:         deref(w.BankAccountType),
		CurrencyCode:            deref(w.CurrencyCode),
		ReportingCode:           deref(w.ReportingCode),
		UpdatedDateUTC:          deref(w.UpdatedDateUTC),
	}
}

// AccountInput is the sparse write shape for accounts.
type AccountInput struct {
	Code                    *string `json:"code,omitempty"`
	Name                    *string `json:"name,omitempty"`
	Type                    *string `json:"type,omitempty"`
	TaxType                 *string `json:"taxType,omitempty"`
	Description             *string `json:"description,omitempty"`
	Status                  *string `json:"status,omitempty"`
	EnablePaymentsToAccount *bool   `json:"enablePaymentsToAccount,omitempty"`
	ShowInExpenseClaims     *bool   `json:"showInExpenseClaims,omitempty"`
	BankAccountNumber       *string `json:"bankAccountNumber,omitempty"`
	BankAccountType         *string `json:"bankAccountType,omitempty"`
	CurrencyCode            *string `json:"currencyCode,omitempty"`
}

func (in AccountInput) toWire() wireAccount {
	return wireAccount{
		Code:                    in.Code,
		Name:                    in.Name,
		Type:                    in.Type,
		TaxType:                 in.TaxType,
		Description:             in.Description,
		Status:                  in.Status,
		EnablePaymentsToAccount: in.EnablePaymentsToAccount,
		ShowInExpenseClaims:     in.ShowInExpenseClaims,
		BankAccountNumber:       in.BankAccountNumber,
		BankAccountType:         in.BankAccountType,
		CurrencyCode:            in.CurrencyCode,
	}
}

type accountsEnvelope struct {
	Accounts []wireAccount `json:"Accounts"`
}

// ListAccounts returns the full chart of accounts. The endpoint is not
// paginated; Where/Order still apply.
func (c *Client) ListAccounts(ctx context.Context, opt ListOptions) ([]Account, error) {
	var env accountsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Accounts", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.Accounts, accountFromWire), nil
}

// GetAccount fetches a single account by identifier.
func (c *Client) GetAccount(ctx context.Context, id string) (Account, error) {
	var env accountsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Accounts/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Account{}, err
	}
	w, err := firstOf(env.Accounts, "account", id)
	if err != nil {
		return Account{}, err
	}
	return accountFromWire(w), nil
}

// CreateAccount adds an account to the chart. Xero creates via PUT here.
func (c *Client) CreateAccount(ctx context.Context, in AccountInput) (Account, error) {
	var env accountsEnvelope
	if err := c.do(ctx, http.MethodPut, "/Accounts", nil, in.toWire(), &env); err != nil {
		return Account{}, err
	}
	w, err := firstOf(env.Accounts, "account", "")
	if err != nil {
		return Account{}, err
	}
	return accountFromWire(w), nil
}

// UpdateAccount applies a sparse update to an existing account.
func (c *Client) UpdateAccount(ctx context.Context, id string, in AccountInput) (Account, error) {
	var env accountsEnvelope
	if err := c.do(ctx, http.MethodPost, "/Accounts/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return Account{}, err
	}
	w, err := firstOf(env.Accounts, "account", id)
	if err != nil {
		return Account{}, err
	}
	return accountFromWire(w), nil
}

// ArchiveAccount requests the ARCHIVED transition.
func (c *Client) ArchiveAccount(ctx context.Context, id string) (Account, error) {
	return c.UpdateAccount(ctx, id, AccountInput{Status: ptr(AccountStatusArchived)})
}
