package xero

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// Tax rate statuses.
const (
	TaxRateStatusActive   = "ACTIVE"
	TaxRateStatusDeleted  = "DELETED"
	TaxRateStatusArchived = "ARCHIVED"
)

// TaxComponent is one part of a compound tax rate.
type TaxComponent struct {
	Name             string           `json:"name,omitempty"`
	Rate             *decimal.Decimal `json:"rate,omitempty"`
	IsCompound       *bool            `json:"isCompound,omitempty"`
	IsNonRecoverable *bool            `json:"isNonRecoverable,omitempty"`
}

type wireTaxComponent struct {
	Name             *string          `json:"Name,omitempty"`
	Rate             *decimal.Decimal `json:"Rate,omitempty"`
	IsCompound       *bool            `json:"IsCompound,omitempty"`
	IsNonRecoverable *bool            `json:"IsNonRecoverable,omitempty"`
}

func taxComponentFromWire(w wireTaxComponent) TaxComponent {
	return TaxComponent{
		Name:             deref(w.Name),
		Rate:             w.Rate,
		IsCompound:       w.IsCompound,
		IsNonRecoverable: w.IsNonRecoverable,
	}
}

// TaxComponentInput is the sparse write shape for one tax component.
type TaxComponentInput struct {
	Name       *string          `json:"name,omitempty"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	IsCompound *bool            `json:"isCompound,omitempty"`
}

func (in TaxComponentInput) toWire() wireTaxComponent {
	return wireTaxComponent{
		Name:       in.Name,
		Rate:       in.Rate,
		IsCompound: in.IsCompound,
	}
}

// TaxRate is a named tax configuration. Tax rates have no identifier of
// their own: the Name and TaxType pair identify the record.
type TaxRate struct {
	Name              string           `json:"name,omitempty"`
	TaxType           string           `json:"taxType,omitempty"`
	Status            string           `json:"status,omitempty"`
	ReportTaxType     string           `json:"reportTaxType,omitempty"`
	DisplayTaxRate    *decimal.Decimal `json:"displayTaxRate,omitempty"`
	EffectiveRate     *decimal.Decimal `json:"effectiveRate,omitempty"`
	CanApplyToAssets  *bool            `json:"canApplyToAssets,omitempty"`
	CanApplyToRevenue *bool            `json:"canApplyToRevenue,omitempty"`
	TaxComponents     []TaxComponent   `json:"taxComponents,omitempty"`
}

type wireTaxRate struct {
	Name              *string            `json:"Name,omitempty"`
	TaxType           *string            `json:"TaxType,omitempty"`
	Status            *string            `json:"Status,omitempty"`
	ReportTaxType     *string            `json:"ReportTaxType,omitempty"`
	DisplayTaxRate    *decimal.Decimal   `json:"DisplayTaxRate,omitempty"`
	EffectiveRate     *decimal.Decimal   `json:"EffectiveRate,omitempty"`
	CanApplyToAssets  *bool              `json:"CanApplyToAssets,omitempty"`
	CanApplyToRevenue *bool              `json:"CanApplyToRevenue,omitempty"`
	TaxComponents     []wireTaxComponent `json:"TaxComponents,omitempty"`
}

func taxRateFromWire(w wireTaxRate) TaxRate {
	return TaxRate{
		Name:              deref(w.Name),
		TaxType:           deref(w.TaxType),
		Status:            deref(w.Status),
		ReportTaxType:     deref(w.ReportTaxType),
		DisplayTaxRate:    w.DisplayTaxRate,
		EffectiveRate:     w.EffectiveRate,
		CanApplyToAssets:  w.CanApplyToAssets,
		CanApplyToRevenue: w.CanApplyToRevenue,
		TaxComponents:     mapSlice(w.TaxComponents, taxComponentFromWire),
	}
}

// TaxRateInput is the sparse write shape for tax rates.
type TaxRateInput struct {
	Name          *string             `json:"name,omitempty"`
	TaxType       *string             `json:"taxType,omitempty"`
	Status        *string             `json:"status,omitempty"`
	ReportTaxType *string             `json:"reportTaxType,omitempty"`
	TaxComponents []TaxComponentInput `json:"taxComponents,omitempty"`
}

func (in TaxRateInput) toWire() wireTaxRate {
	w := wireTaxRate{
		Name:          in.Name,
		TaxType:       in.TaxType,
		Status:        in.Status,
		ReportTaxType: in.ReportTaxType,
	}
	if in.TaxComponents != nil {
		w.TaxComponents = mapSlice(in.TaxComponents, TaxComponentInput.toWire)
	}
	return w
}

type taxRatesEnvelope struct {
	TaxRates []wireTaxRate `json:"TaxRates"`
}

// ListTaxRates returns the full tax-rate collection; the endpoint is
// not paginated.
func (c *Client) ListTaxRates(ctx context.Context, opt ListOptions) ([]TaxRate, error) {
	var env taxRatesEnvelope
	if err := c.do(ctx, http.MethodGet, "/TaxRates", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.TaxRates, taxRateFromWire), nil
}

// CreateTaxRate adds a tax rate.
func (c *Client) CreateTaxRate(ctx context.Context, in TaxRateInput) (TaxRate, error) {
	var env taxRatesEnvelope
	if err := c.do(ctx, http.MethodPost, "/TaxRates", nil, in.toWire(), &env); err != nil {
		return TaxRate{}, err
	}
	w, err := firstOf(env.TaxRates, "tax rate", "")
	if err != nil {
		return TaxRate{}, err
	}
	return taxRateFromWire(w), nil
}

// UpdateTaxRate updates an existing tax rate. The body must carry the
// Name that identifies the record; the endpoint has no id path.
func (c *Client) UpdateTaxRate(ctx context.Context, in TaxRateInput) (TaxRate, error) {
	var env taxRatesEnvelope
	if err := c.do(ctx, http.MethodPost, "/TaxRates", nil, in.toWire(), &env); err != nil {
		return TaxRate{}, err
	}
	w, err := firstOf(env.TaxRates, "tax rate", deref(in.Name))
	if err != nil {
		return TaxRate{}, err
	}
	return taxRateFromWire(w), nil
}
