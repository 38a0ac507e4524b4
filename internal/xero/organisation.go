package xero

import (
	"context"
	"net/http"
)

// Organisation is the tenant's own profile. Read-only; there is exactly
// one per tenant and the endpoint always returns it at index 0.
type Organisation struct {
	ID                    string `json:"id"`
	Name                  string `json:"name,omitempty"`
	LegalName             string `json:"legalName,omitempty"`
	OrganisationType      string `json:"organisationType,omitempty"`
	BaseCurrency          string `json:"baseCurrency,omitempty"`
	CountryCode           string `json:"countryCode,omitempty"`
	PaysTax               *bool  `json:"paysTax,omitempty"`
	IsDemoCompany         *bool  `json:"isDemoCompany,omitempty"`
	SalesTaxBasis         string `json:"salesTaxBasis,omitempty"`
	DefaultSalesTax       string `json:"defaultSalesTax,omitempty"`
	FinancialYearEndDay   int    `json:"financialYearEndDay,omitempty"`
	FinancialYearEndMonth int    `json:"financialYearEndMonth,omitempty"`
	ShortCode             string `json:"shortCode,omitempty"`
	Timezone              string `json:"timezone,omitempty"`
}

type wireOrganisation struct {
	OrganisationID        *string `json:"OrganisationID,omitempty"`
	Name                  *string `json:"Name,omitempty"`
	LegalName             *string `json:"LegalName,omitempty"`
	OrganisationType      *string `json:"OrganisationType,omitempty"`
	BaseCurrency          *string `json:"BaseCurrency,omitempty"`
	CountryCode           *string `json:"CountryCode,omitempty"`
	PaysTax               *bool   `json:"PaysTax,omitempty"`
	IsDemoCompany         *bool   `json:"IsDemoCompany,omitempty"`
	SalesTaxBasis         *string `json:"SalesTaxBasis,omitempty"`
	DefaultSalesTax       *string `json:"DefaultSalesTax,omitempty"`
	FinancialYearEndDay   *int    `json:"FinancialYearEndDay,omitempty"`
	FinancialYearEndMonth *int    `json:"FinancialYearEndMonth,omitempty"`
	ShortCode             *string `json:"ShortCode,omitempty"`
	Timezone              *string `json:"Timezone,omitempty"`
}

func organisationFromWire(w wireOrganisation) Organisation {
	o := Organisation{
		ID:               deref(w.OrganisationID),
		Name:             deref(w.Name),
		LegalName:        deref(w.LegalName),
		OrganisationType: deref(w.OrganisationType),
		BaseCurrency:     deref(w.BaseCurrency),
		CountryCode:      deref(w.CountryCode),
		PaysTax:          w.PaysTax,
		IsDemoCompany:    w.IsDemoCompany,
		SalesTaxBasis:    deref(w.SalesTaxBasis),
		DefaultSalesTax:  deref(w.DefaultSalesTax),
		ShortCode:        deref(w.ShortCode),
		Timezone:         deref(w.Timezone),
	}
	if w.FinancialYearEndDay != nil {
		o.FinancialYearEndDay = *w.FinancialYearEndDay
	}
	if w.FinancialYearEndMonth != nil {
		o.FinancialYearEndMonth = *w.FinancialYearEndMonth
	}
	return o
}

type organisationsEnvelope struct {
	Organisations []wireOrganisation `json:"Organisations"`
}

// GetOrganisation fetches the tenant's organisation profile.
func (c *Client) GetOrganisation(ctx context.Context) (Organisation, error) {
	var env organisationsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Organisation", nil, nil, &env); err != nil {
		return Organisation{}, err
	}
	w, err := firstOf(env.Organisations, "organisation", "")
	if err != nil {
		return Organisation{}, err
	}
	return organisationFromWire(w), nil
}
