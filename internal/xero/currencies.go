package xero

import (
	"context"
	"net/http"
)

// Currency is one currency the tenant transacts in.
type Currency struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type wireCurrency struct {
	Code        *string `json:"Code,omitempty"`
	Description *string `json:"Description,omitempty"`
}

func currencyFromWire(w wireCurrency) Currency {
	return Currency{Code: deref(w.Code), Description: deref(w.Description)}
}

type currenciesEnvelope struct {
	Currencies []wireCurrency `json:"Currencies"`
}

// ListCurrencies returns the tenant's currencies; the endpoint is not
// paginated.
func (c *Client) ListCurrencies(ctx context.Context, opt ListOptions) ([]Currency, error) {
	var env currenciesEnvelope
	if err := c.do(ctx, http.MethodGet, "/Currencies", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.Currencies, currencyFromWire), nil
}

// AddCurrency enables a currency by ISO code. Xero creates via PUT.
func (c *Client) AddCurrency(ctx context.Context, code string) (Currency, error) {
	body := wireCurrency{Code: &code}
	var env currenciesEnvelope
	if err := c.do(ctx, http.MethodPut, "/Currencies", nil, body, &env); err != nil {
		return Currency{}, err
	}
	w, err := firstOf(env.Currencies, "currency", code)
	if err != nil {
		return Currency{}, err
	}
	return currencyFromWire(w), nil
}
