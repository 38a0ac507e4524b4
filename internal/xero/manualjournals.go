package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Manual journal statuses.
const (
	ManualJournalStatusDraft    = "DRAFT"
	ManualJournalStatusPosted   = "POSTED"
	ManualJournalStatusVoided   = "VOIDED"
	ManualJournalStatusDeleted  = "DELETED"
	ManualJournalStatusArchived = "ARCHIVED"
)

// JournalLineInput is one line of a manual journal. The remote rejects
// journals whose lines do not sum to zero; this client never pre-checks
// the balance.
type JournalLineInput struct {
	LineAmount  *decimal.Decimal `json:"lineAmount,omitempty"`
	AccountCode *string          `json:"accountCode,omitempty"`
	Description *string          `json:"description,omitempty"`
	TaxType     *string          `json:"taxType,omitempty"`
	Tracking    []LineTracking   `json:"tracking,omitempty"`
}

// ManualJournalLine is the read shape of one journal line.
type ManualJournalLine struct {
	LineAmount  *decimal.Decimal `json:"lineAmount,omitempty"`
	AccountCode string           `json:"accountCode,omitempty"`
	Description string           `json:"description,omitempty"`
	TaxType     string           `json:"taxType,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
	Tracking    []LineTracking   `json:"tracking,omitempty"`
}

type wireManualJournalLine struct {
	LineAmount  *decimal.Decimal   `json:"LineAmount,omitempty"`
	AccountCode *string            `json:"AccountCode,omitempty"`
	Description *string            `json:"Description,omitempty"`
	TaxType     *string            `json:"TaxType,omitempty"`
	TaxAmount   *decimal.Decimal   `json:"TaxAmount,omitempty"`
	Tracking    []wireLineTracking `json:"Tracking,omitempty"`
}

func manualJournalLineFromWire(w wireManualJournalLine) ManualJournalLine {
	return ManualJournalLine{
		LineAmount:  w.LineAmount,
		AccountCode: deref(w.AccountCode),
		Description: deref(w.Description),
		TaxType:     deref(w.TaxType),
		TaxAmount:   w.TaxAmount,
		Tracking:    mapSlice(w.Tracking, lineTrackingFromWire),
	}
}

func (in JournalLineInput) toWire() wireManualJournalLine {
	w := wireManualJournalLine{
		LineAmount:  in.LineAmount,
		AccountCode: in.AccountCode,
		Description: in.Description,
		TaxType:     in.TaxType,
	}
	for _, t := range in.Tracking {
		w.Tracking = append(w.Tracking, t.toWire())
	}
	return w
}

// ManualJournal is a hand-posted journal entry.
type ManualJournal struct {
	ID                     string              `json:"id"`
	Narration              string              `json:"narration,omitempty"`
	Date                   string              `json:"date,omitempty"`
	Status                 string              `json:"status,omitempty"`
	LineAmountTypes        string              `json:"lineAmountTypes,omitempty"`
	JournalLines           []ManualJournalLine `json:"journalLines,omitempty"`
	ShowOnCashBasisReports *bool               `json:"showOnCashBasisReports,omitempty"`
	UpdatedDateUTC         string              `json:"updatedDateUtc,omitempty"`
}

type wireManualJournal struct {
	ManualJournalID        *string                 `json:"ManualJournalID,omitempty"`
	Narration              *string                 `json:"Narration,omitempty"`
	Date                   *string                 `json:"Date,omitempty"`
	Status                 *string                 `json:"Status,omitempty"`
	LineAmountTypes        *string                 `json:"LineAmountTypes,omitempty"`
	JournalLines           []wireManualJournalLine `json:"JournalLines,omitempty"`
	ShowOnCashBasisReports *bool                   `json:"ShowOnCashBasisReports,omitempty"`
	UpdatedDateUTC         *string                 `json:"UpdatedDateUTC,omitempty"`
}

func manualJournalFromWire(w wireManualJournal) ManualJournal {
	return ManualJournal{
		ID:                     deref(w.ManualJournalID),
		Narration:              deref(w.Narration),
		Date:                   deref(w.Date),
		Status:                 deref(w.Status),
		LineAmountTypes:        deref(w.LineAmountTypes),
		JournalLines:           mapSlice(w.JournalLines, manualJournalLineFromWire),
		ShowOnCashBasisReports: w.ShowOnCashBasisReports,
		UpdatedDateUTC:         deref(w.UpdatedDateUTC),
	}
}

// ManualJournalInput is the sparse write shape for manual journals.
type ManualJournalInput struct {
	Narration              *string            `json:"narration,omitempty"`
	Date                   *string            `json:"date,omitempty"`
	Status                 *string            `json:"status,omitempty"`
	LineAmountTypes        *string            `json:"lineAmountTypes,omitempty"`
	JournalLines           []JournalLineInput `json:"journalLines,omitempty"`
	ShowOnCashBasisReports *bool              `json:"showOnCashBasisReports,omitempty"`
}

func (in ManualJournalInput) toWire() wireManualJournal {
	w := wireManualJournal{
		Narration:              in.Narration,
		Date:                   in.Date,
		Status:                 in.Status,
		LineAmountTypes:        in.LineAmountTypes,
		ShowOnCashBasisReports: in.ShowOnCashBasisReports,
	}
	if in.JournalLines != nil {
		w.JournalLines = mapSlice(in.JournalLines, JournalLineInput.toWire)
	}
	return w
}

type manualJournalsEnvelope struct {
	ManualJournals []wireManualJournal `json:"ManualJournals"`
}

// ListManualJournals returns one page of manual journals.
func (c *Client) ListManualJournals(ctx context.Context, opt ListOptions) (Page[ManualJournal], error) {
	var env manualJournalsEnvelope
	if err := c.do(ctx, http.MethodGet, "/ManualJournals", opt.values(), nil, &env); err != nil {
		return Page[ManualJournal]{}, err
	}
	return newPage(mapSlice(env.ManualJournals, manualJournalFromWire), opt.page()), nil
}

// GetManualJournal fetches a single manual journal by identifier.
func (c *Client) GetManualJournal(ctx context.Context, id string) (ManualJournal, error) {
	var env manualJournalsEnvelope
	if err := c.do(ctx, http.MethodGet, "/ManualJournals/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return ManualJournal{}, err
	}
	w, err := firstOf(env.ManualJournals, "manual journal", id)
	if err != nil {
		return ManualJournal{}, err
	}
	return manualJournalFromWire(w), nil
}

// CreateManualJournal submits a new manual journal.
func (c *Client) CreateManualJournal(ctx context.Context, in ManualJournalInput) (ManualJournal, error) {
	var env manualJournalsEnvelope
	if err := c.do(ctx, http.MethodPost, "/ManualJournals", nil, in.toWire(), &env); err != nil {
		return ManualJournal{}, err
	}
	w, err := firstOf(env.ManualJournals, "manual journal", "")
	if err != nil {
		return ManualJournal{}, err
	}
	return manualJournalFromWire(w), nil
}

// UpdateManualJournal applies a sparse update to an existing manual
// journal.
func (c *Client) UpdateManualJournal(ctx context.Context, id string, in ManualJournalInput) (ManualJournal, error) {
	var env manualJournalsEnvelope
	if err := c.do(ctx, http.MethodPost, "/ManualJournals/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return ManualJournal{}, err
	}
	w, err := firstOf(env.ManualJournals, "manual journal", id)
	if err != nil {
		return ManualJournal{}, err
	}
	return manualJournalFromWire(w), nil
}

// VoidManualJournal requests the VOIDED transition.
func (c *Client) VoidManualJournal(ctx context.Context, id string) (ManualJournal, error) {
	return c.UpdateManualJournal(ctx, id, ManualJournalInput{Status: ptr(ManualJournalStatusVoided)})
}
