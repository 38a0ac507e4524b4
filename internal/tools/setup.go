package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type taxComponentArgs struct {
	Name       *string  `json:"name,omitempty" jsonschema:"Component name"`
	Rate       *float64 `json:"rate,omitempty" jsonschema:"Percentage rate"`
	IsCompound *bool    `json:"isCompound,omitempty" jsonschema:"Apply on top of the other components"`
}

type taxRateArgs struct {
	Name          *string            `json:"name,omitempty" jsonschema:"Tax rate name. Identifies the rate; tax rates have no UUID"`
	TaxType       *string            `json:"taxType,omitempty" jsonschema:"Tax type code"`
	Status        *string            `json:"status,omitempty" jsonschema:"ACTIVE or DELETED"`
	ReportTaxType *string            `json:"reportTaxType,omitempty" jsonschema:"Report grouping, e.g. OUTPUT or INPUT"`
	TaxComponents []taxComponentArgs `json:"taxComponents,omitempty" jsonschema:"Component rates making up the total"`
}

func (a taxRateArgs) input() xero.TaxRateInput {
	in := xero.TaxRateInput{
		Name:          a.Name,
		TaxType:       a.TaxType,
		Status:        a.Status,
		ReportTaxType: a.ReportTaxType,
	}
	for _, tc := range a.TaxComponents {
		in.TaxComponents = append(in.TaxComponents, xero.TaxComponentInput{
			Name:       tc.Name,
			Rate:       dec(tc.Rate),
			IsCompound: tc.IsCompound,
		})
	}
	return in
}

type renameArgs struct {
	ID   string `json:"id" jsonschema:"Record identifier (UUID)"`
	Name string `json:"name" jsonschema:"New name"`
}

type optionArgs struct {
	CategoryID string `json:"categoryId" jsonschema:"Tracking category identifier (UUID)"`
	Name       string `json:"name" jsonschema:"Option name"`
}

type renameOptionArgs struct {
	CategoryID string `json:"categoryId" jsonschema:"Tracking category identifier (UUID)"`
	OptionID   string `json:"optionId" jsonschema:"Tracking option identifier (UUID)"`
	Name       string `json:"name" jsonschema:"New option name"`
}

type deleteOptionArgs struct {
	CategoryID string `json:"categoryId" jsonschema:"Tracking category identifier (UUID)"`
	OptionID   string `json:"optionId" jsonschema:"Tracking option identifier (UUID)"`
}

type currencyArgs struct {
	Code string `json:"code" jsonschema:"ISO 4217 currency code, e.g. NZD"`
}

type emptyArgs struct{}

func (r *Registry) registerSetup() {
	add(r, "list-tax-rates", "List the tenant's tax rates with their component breakdown.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListTaxRates(ctx, in.options())
		})

	add(r, "create-tax-rate", "Create a tax rate from one or more component rates.",
		func(ctx context.Context, c *xero.Client, in taxRateArgs) (any, error) {
			return c.CreateTaxRate(ctx, in.input())
		})

	add(r, "update-tax-rate", "Update a tax rate. The name identifies the rate; tax rates have no UUID.",
		func(ctx context.Context, c *xero.Client, in taxRateArgs) (any, error) {
			return c.UpdateTaxRate(ctx, in.input())
		})

	add(r, "list-tracking-categories", "List tracking categories with their options.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListTrackingCategories(ctx, in.options())
		})

	add(r, "get-tracking-category", "Fetch one tracking category by identifier.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetTrackingCategory(ctx, in.ID)
		})

	add(r, "create-tracking-category", "Create a tracking category. A tenant can hold at most two.",
		func(ctx context.Context, c *xero.Client, in nameArgs) (any, error) {
			return c.CreateTrackingCategory(ctx, in.Name)
		})

	add(r, "update-tracking-category", "Rename a tracking category.",
		func(ctx context.Context, c *xero.Client, in renameArgs) (any, error) {
			return c.UpdateTrackingCategory(ctx, in.ID, in.Name)
		})

	add(r, "delete-tracking-category", "Permanently delete a tracking category and its options.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			if err := c.DeleteTrackingCategory(ctx, in.ID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "deleted"}, nil
		})

	add(r, "create-tracking-option", "Add an option to a tracking category.",
		func(ctx context.Context, c *xero.Client, in optionArgs) (any, error) {
			return c.CreateTrackingOption(ctx, in.CategoryID, in.Name)
		})

	add(r, "update-tracking-option", "Rename a tracking option.",
		func(ctx context.Context, c *xero.Client, in renameOptionArgs) (any, error) {
			return c.UpdateTrackingOption(ctx, in.CategoryID, in.OptionID, in.Name)
		})

	add(r, "delete-tracking-option", "Permanently delete a tracking option.",
		func(ctx context.Context, c *xero.Client, in deleteOptionArgs) (any, error) {
			if err := c.DeleteTrackingOption(ctx, in.CategoryID, in.OptionID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "deleted"}, nil
		})

	add(r, "list-currencies", "List the currencies the tenant transacts in.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListCurrencies(ctx, in.options())
		})

	add(r, "add-currency", "Enable a currency by ISO code.",
		func(ctx context.Context, c *xero.Client, in currencyArgs) (any, error) {
			return c.AddCurrency(ctx, in.Code)
		})

	add(r, "get-organisation", "Fetch the tenant's organisation profile: name, base currency, financial year end.",
		func(ctx context.Context, c *xero.Client, in emptyArgs) (any, error) {
			return c.GetOrganisation(ctx)
		})

	add(r, "list-branding-themes", "List invoice and quote branding themes.",
		func(ctx context.Context, c *xero.Client, in emptyArgs) (any, error) {
			return c.ListBrandingThemes(ctx)
		})
}
