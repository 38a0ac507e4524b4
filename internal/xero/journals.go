package xero

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// JournalLine is one side of a ledger journal. Everything here is
// remote-written; journals have no write operations at all.
type JournalLine struct {
	ID          string           `json:"id"`
	AccountID   string           `json:"accountId,omitempty"`
	AccountCode string           `json:"accountCode,omitempty"`
	AccountType string           `json:"accountType,omitempty"`
	AccountName string           `json:"accountName,omitempty"`
	Description string           `json:"description,omitempty"`
	NetAmount   *decimal.Decimal `json:"netAmount,omitempty"`
	GrossAmount *decimal.Decimal `json:"grossAmount,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
	TaxType     string           `json:"taxType,omitempty"`
	Tracking    []LineTracking   `json:"tracking,omitempty"`
}

type wireJournalLine struct {
	JournalLineID      *string            `json:"JournalLineID,omitempty"`
	AccountID          *string            `json:"AccountID,omitempty"`
	AccountCode        *string            `json:"AccountCode,omitempty"`
	AccountType        *string            `json:"AccountType,omitempty"`
	AccountName        *string            `json:"AccountName,omitempty"`
	Description        *string            `json:"Description,omitempty"`
	NetAmount          *decimal.Decimal   `json:"NetAmount,omitempty"`
	GrossAmount        *decimal.Decimal   `json:"GrossAmount,omitempty"`
	TaxAmount          *decimal.Decimal   `json:"TaxAmount,omitempty"`
	TaxType            *string            `json:"TaxType,omitempty"`
	TrackingCategories []wireLineTracking `json:"TrackingCategories,omitempty"`
}

func journalLineFromWire(w wireJournalLine) JournalLine {
	return JournalLine{
		ID:          deref(w.JournalLineID),
		AccountID:   deref(w.AccountID),
		AccountCode: deref(w.AccountCode),
		AccountType: deref(w.AccountType),
		AccountName: deref(w.AccountName),
		Description: deref(w.Description),
		NetAmount:   w.NetAmount,
		GrossAmount: w.GrossAmount,
		TaxAmount:   w.TaxAmount,
		TaxType:     deref(w.TaxType),
		Tracking:    mapSlice(w.TrackingCategories, lineTrackingFromWire),
	}
}

// Journal is one read-only ledger journal: the double-entry record the
// remote derives from every posted document.
type Journal struct {
	ID             string        `json:"id"`
	Date           string        `json:"date,omitempty"`
	Number         int           `json:"number,omitempty"`
	Reference      string        `json:"reference,omitempty"`
	SourceID       string        `json:"sourceId,omitempty"`
	SourceType     string        `json:"sourceType,omitempty"`
	CreatedDateUTC string        `json:"createdDateUtc,omitempty"`
	JournalLines   []JournalLine `json:"journalLines,omitempty"`
}

type wireJournal struct {
	JournalID      *string           `json:"JournalID,omitempty"`
	JournalDate    *string           `json:"JournalDate,omitempty"`
	JournalNumber  *int              `json:"JournalNumber,omitempty"`
	Reference      *string           `json:"Reference,omitempty"`
	SourceID       *string           `json:"SourceID,omitempty"`
	SourceType     *string           `json:"SourceType,omitempty"`
	CreatedDateUTC *string           `json:"CreatedDateUTC,omitempty"`
	JournalLines   []wireJournalLine `json:"JournalLines,omitempty"`
}

func journalFromWire(w wireJournal) Journal {
	j := Journal{
		ID:             deref(w.JournalID),
		Date:           deref(w.JournalDate),
		Reference:      deref(w.Reference),
		SourceID:       deref(w.SourceID),
		SourceType:     deref(w.SourceType),
		CreatedDateUTC: deref(w.CreatedDateUTC),
		JournalLines:   mapSlice(w.JournalLines, journalLineFromWire),
	}
	if w.JournalNumber != nil {
		j.Number = *w.JournalNumber
	}
	return j
}

type journalsEnvelope struct {
	Journals []wireJournal `json:"Journals"`
}

// JournalListOptions narrows journal listing. The endpoint pages by
// journal-number offset rather than page number: results start after
// Offset and cap at 100.
type JournalListOptions struct {
	Offset       int
	PaymentsOnly bool
}

// JournalPage is one offset-delimited batch of journals. NextOffset is
// the highest journal number in the batch, the Offset to pass on the
// next call; when the batch is empty it echoes the requested offset.
type JournalPage struct {
	Items      []Journal `json:"items"`
	NextOffset int       `json:"nextOffset"`
	HasMore    bool      `json:"hasMore"`
}

// ListJournals returns up to 100 journals after the given offset.
func (c *Client) ListJournals(ctx context.Context, opt JournalListOptions) (JournalPage, error) {
	q := url.Values{}
	if opt.Offset > 0 {
		q.Set("offset", strconv.Itoa(opt.Offset))
	}
	if opt.PaymentsOnly {
		q.Set("paymentsOnly", "true")
	}
	var env journalsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Journals", q, nil, &env); err != nil {
		return JournalPage{}, err
	}

	page := JournalPage{
		Items:      mapSlice(env.Journals, journalFromWire),
		NextOffset: opt.Offset,
		HasMore:    len(env.Journals) >= pageSize,
	}
	for _, j := range page.Items {
		if j.Number > page.NextOffset {
			page.NextOffset = j.Number
		}
	}
	return page, nil
}

// GetJournal fetches a single journal by identifier or number.
func (c *Client) GetJournal(ctx context.Context, id string) (Journal, error) {
	var env journalsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Journals/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Journal{}, err
	}
	w, err := firstOf(env.Journals, "journal", id)
	if err != nil {
		return Journal{}, err
	}
	return journalFromWire(w), nil
}
