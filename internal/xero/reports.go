package xero

import (
	"context"
	"net/http"
	"net/url"
)

// ReportCell is one cell in a report row. Attributes carry the record
// identifiers behind drill-down cells.
type ReportCell struct {
	Value      string            `json:"value,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type wireReportAttribute struct {
	Value *string `json:"Value,omitempty"`
	ID    *string `json:"Id,omitempty"`
}

type wireReportCell struct {
	Value      *string               `json:"Value,omitempty"`
	Attributes []wireReportAttribute `json:"Attributes,omitempty"`
}

func reportCellFromWire(w wireReportCell) ReportCell {
	cell := ReportCell{Value: deref(w.Value)}
	if len(w.Attributes) > 0 {
		cell.Attributes = make(map[string]string, len(w.Attributes))
		for _, a := range w.Attributes {
			cell.Attributes[deref(a.ID)] = deref(a.Value)
		}
	}
	return cell
}

// ReportRow is one row in a report. Section rows nest their member rows.
type ReportRow struct {
	RowType string       `json:"rowType,omitempty"`
	Title   string       `json:"title,omitempty"`
	Cells   []ReportCell `json:"cells,omitempty"`
	Rows    []ReportRow  `json:"rows,omitempty"`
}

type wireReportRow struct {
	RowType *string          `json:"RowType,omitempty"`
	Title   *string          `json:"Title,omitempty"`
	Cells   []wireReportCell `json:"Cells,omitempty"`
	Rows    []wireReportRow  `json:"Rows,omitempty"`
}

func reportRowFromWire(w wireReportRow) ReportRow {
	return ReportRow{
		RowType: deref(w.RowType),
		Title:   deref(w.Title),
		Cells:   mapSlice(w.Cells, reportCellFromWire),
		Rows:    mapSlice(w.Rows, reportRowFromWire),
	}
}

// Report is a rendered financial report: titles plus a row tree. The
// remote decides layout; nothing here interprets the figures.
type Report struct {
	ID             string      `json:"id,omitempty"`
	Name           string      `json:"name,omitempty"`
	Type           string      `json:"type,omitempty"`
	Titles         []string    `json:"titles,omitempty"`
	Date           string      `json:"date,omitempty"`
	UpdatedDateUTC string      `json:"updatedDateUtc,omitempty"`
	Rows           []ReportRow `json:"rows,omitempty"`
}

type wireReport struct {
	ReportID       *string         `json:"ReportID,omitempty"`
	ReportName     *string         `json:"ReportName,omitempty"`
	ReportType     *string         `json:"ReportType,omitempty"`
	ReportTitles   []string        `json:"ReportTitles,omitempty"`
	ReportDate     *string         `json:"ReportDate,omitempty"`
	UpdatedDateUTC *string         `json:"UpdatedDateUTC,omitempty"`
	Rows           []wireReportRow `json:"Rows,omitempty"`
}

func reportFromWire(w wireReport) Report {
	return Report{
		ID:             deref(w.ReportID),
		Name:           deref(w.ReportName),
		Type:           deref(w.ReportType),
		Titles:         w.ReportTitles,
		Date:           deref(w.ReportDate),
		UpdatedDateUTC: deref(w.UpdatedDateUTC),
		Rows:           mapSlice(w.Rows, reportRowFromWire),
	}
}

type reportsEnvelope struct {
	Reports []wireReport `json:"Reports"`
}

func (c *Client) getReport(ctx context.Context, name string, q url.Values) (Report, error) {
	var env reportsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Reports/"+name, q, nil, &env); err != nil {
		return Report{}, err
	}
	w, err := firstOf(env.Reports, "report", name)
	if err != nil {
		return Report{}, err
	}
	return reportFromWire(w), nil
}

// ProfitAndLossReport fetches the profit and loss report for the given
// date range. Either bound may be empty to use the remote default.
func (c *Client) ProfitAndLossReport(ctx context.Context, fromDate, toDate string) (Report, error) {
	q := url.Values{}
	if fromDate != "" {
		q.Set("fromDate", fromDate)
	}
	if toDate != "" {
		q.Set("toDate", toDate)
	}
	return c.getReport(ctx, "ProfitAndLoss", q)
}

// BalanceSheetReport fetches the balance sheet as at the given date, or
// today when date is empty.
func (c *Client) BalanceSheetReport(ctx context.Context, date string) (Report, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	return c.getReport(ctx, "BalanceSheet", q)
}

// TrialBalanceReport fetches the trial balance as at the given date.
func (c *Client) TrialBalanceReport(ctx context.Context, date string) (Report, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	return c.getReport(ctx, "TrialBalance", q)
}

// AgedReceivablesReport fetches outstanding receivables for one
// contact. The contact identifier is required by the endpoint.
func (c *Client) AgedReceivablesReport(ctx context.Context, contactID, date string) (Report, error) {
	q := url.Values{}
	q.Set("contactID", contactID)
	if date != "" {
		q.Set("date", date)
	}
	return c.getReport(ctx, "AgedReceivablesByContact", q)
}

// AgedPayablesReport fetches outstanding payables for one contact.
func (c *Client) AgedPayablesReport(ctx context.Context, contactID, date string) (Report, error) {
	q := url.Values{}
	q.Set("contactID", contactID)
	if date != "" {
		q.Set("date", date)
	}
	return c.getReport(ctx, "AgedPayablesByContact", q)
}
