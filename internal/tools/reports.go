package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type dateRangeArgs struct {
	FromDate string `json:"fromDate,omitempty" jsonschema:"Range start (YYYY-MM-DD). Defaults to the current month"`
	ToDate   string `json:"toDate,omitempty" jsonschema:"Range end (YYYY-MM-DD)"`
}

type asAtArgs struct {
	Date string `json:"date,omitempty" jsonschema:"Report date (YYYY-MM-DD). Defaults to today"`
}

type agedReportArgs struct {
	ContactID string `json:"contactId" jsonschema:"Contact to report on (UUID)"`
	Date      string `json:"date,omitempty" jsonschema:"Report date (YYYY-MM-DD). Defaults to today"`
}

func (r *Registry) registerReports() {
	add(r, "report-profit-and-loss", "Run the profit and loss report for a date range.",
		func(ctx context.Context, c *xero.Client, in dateRangeArgs) (any, error) {
			return c.ProfitAndLossReport(ctx, in.FromDate, in.ToDate)
		})

	add(r, "report-balance-sheet", "Run the balance sheet as at a date.",
		func(ctx context.Context, c *xero.Client, in asAtArgs) (any, error) {
			return c.BalanceSheetReport(ctx, in.Date)
		})

	add(r, "report-trial-balance", "Run the trial balance as at a date.",
		func(ctx context.Context, c *xero.Client, in asAtArgs) (any, error) {
			return c.TrialBalanceReport(ctx, in.Date)
		})

	add(r, "report-aged-receivables", "Run the aged receivables report for one contact.",
		func(ctx context.Context, c *xero.Client, in agedReportArgs) (any, error) {
			return c.AgedReceivablesReport(ctx, in.ContactID, in.Date)
		})

	add(r, "report-aged-payables", "Run the aged payables report for one contact.",
		func(ctx context.Context, c *xero.Client, in agedReportArgs) (any, error) {
			return c.AgedPayablesReport(ctx, in.ContactID, in.Date)
		})
}
