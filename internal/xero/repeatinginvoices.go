package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Repeating invoice statuses.
const (
	RepeatingInvoiceStatusDraft      = "DRAFT"
	RepeatingInvoiceStatusAuthorised = "AUTHORISED"
	RepeatingInvoiceStatusDeleted    = "DELETED"
)

// Schedule describes when a repeating invoice generates real invoices.
type Schedule struct {
	Period            int    `json:"period,omitempty"`
	Unit              string `json:"unit,omitempty"`
	DueDate           int    `json:"dueDate,omitempty"`
	DueDateType       string `json:"dueDateType,omitempty"`
	StartDate         string `json:"startDate,omitempty"`
	NextScheduledDate string `json:"nextScheduledDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
}

type wireSchedule struct {
	Period            *int    `json:"Period,omitempty"`
	Unit              *string `json:"Unit,omitempty"`
	DueDate           *int    `json:"DueDate,omitempty"`
	DueDateType       *string `json:"DueDateType,omitempty"`
	StartDate         *string `json:"StartDate,omitempty"`
	NextScheduledDate *string `json:"NextScheduledDate,omitempty"`
	EndDate           *string `json:"EndDate,omitempty"`
}

func scheduleFromWire(w *wireSchedule) *Schedule {
	if w == nil {
		return nil
	}
	s := &Schedule{
		Unit:              deref(w.Unit),
		DueDateType:       deref(w.DueDateType),
		StartDate:         deref(w.StartDate),
		NextScheduledDate: deref(w.NextScheduledDate),
		EndDate:           deref(w.EndDate),
	}
	if w.Period != nil {
		s.Period = *w.Period
	}
	if w.DueDate != nil {
		s.DueDate = *w.DueDate
	}
	return s
}

// ScheduleInput is the sparse write shape for a schedule.
type ScheduleInput struct {
	Period      *int    `json:"period,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	DueDate     *int    `json:"dueDate,omitempty"`
	DueDateType *string `json:"dueDateType,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

func (in *ScheduleInput) toWire() *wireSchedule {
	if in == nil {
		return nil
	}
	return &wireSchedule{
		Period:      in.Period,
		Unit:        in.Unit,
		DueDate:     in.DueDate,
		DueDateType: in.DueDateType,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
}

// RepeatingInvoice is a template that generates invoices on a schedule.
type RepeatingInvoice struct {
	ID                 string           `json:"id"`
	Type               string           `json:"type,omitempty"`
	Contact            *ContactRef      `json:"contact,omitempty"`
	Schedule           *Schedule        `json:"schedule,omitempty"`
	LineItems          []LineItem       `json:"lineItems,omitempty"`
	LineAmountTypes    string           `json:"lineAmountTypes,omitempty"`
	Reference          string           `json:"reference,omitempty"`
	BrandingThemeID    string           `json:"brandingThemeId,omitempty"`
	CurrencyCode       string           `json:"currencyCode,omitempty"`
	Status             string           `json:"status,omitempty"`
	SubTotal           *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax           *decimal.Decimal `json:"totalTax,omitempty"`
	Total              *decimal.Decimal `json:"total,omitempty"`
	ApprovedForSending *bool            `json:"approvedForSending,omitempty"`
}

type wireRepeatingInvoice struct {
	RepeatingInvoiceID *string          `json:"RepeatingInvoiceID,omitempty"`
	Type               *string          `json:"Type,omitempty"`
	Contact            *wireContactRef  `json:"Contact,omitempty"`
	Schedule           *wireSchedule    `json:"Schedule,omitempty"`
	LineItems          []wireLineItem   `json:"LineItems,omitempty"`
	LineAmountTypes    *string          `json:"LineAmountTypes,omitempty"`
	Reference          *string          `json:"Reference,omitempty"`
	BrandingThemeID    *string          `json:"BrandingThemeID,omitempty"`
	CurrencyCode       *string          `json:"CurrencyCode,omitempty"`
	Status             *string          `json:"Status,omitempty"`
	SubTotal           *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax           *decimal.Decimal `json:"TotalTax,omitempty"`
	Total              *decimal.Decimal `json:"Total,omitempty"`
	ApprovedForSending *bool            `json:"ApprovedForSending,omitempty"`
}

func repeatingInvoiceFromWire(w wireRepeatingInvoice) RepeatingInvoice {
	return RepeatingInvoice{
		ID:                 deref(w.RepeatingInvoiceID),
		Type:               deref(w.Type),
		Contact:            contactRefFromWire(w.Contact),
		Schedule:           scheduleFromWire(w.Schedule),
		LineItems:          mapSlice(w.LineItems, lineItemFromWire),
		LineAmountTypes:    deref(w.LineAmountTypes),
		Reference:          deref(w.Reference),
		BrandingThemeID:    deref(w.BrandingThemeID),
		CurrencyCode:       deref(w.CurrencyCode),
		Status:             deref(w.Status),
		SubTotal:           w.SubTotal,
		TotalTax:           w.TotalTax,
		Total:              w.Total,
		ApprovedForSending: w.ApprovedForSending,
	}
}

// RepeatingInvoiceInput is the sparse write shape for repeating
// invoices.
type RepeatingInvoiceInput struct {
	Type               *string         `json:"type,omitempty"`
	ContactID          *string         `json:"contactId,omitempty"`
	Schedule           *ScheduleInput  `json:"schedule,omitempty"`
	LineItems          []LineItemInput `json:"lineItems,omitempty"`
	LineAmountTypes    *string         `json:"lineAmountTypes,omitempty"`
	Reference          *string         `json:"reference,omitempty"`
	BrandingThemeID    *string         `json:"brandingThemeId,omitempty"`
	CurrencyCode       *string         `json:"currencyCode,omitempty"`
	Status             *string         `json:"status,omitempty"`
	ApprovedForSending *bool           `json:"approvedForSending,omitempty"`
}

func (in RepeatingInvoiceInput) toWire() wireRepeatingInvoice {
	return wireRepeatingInvoice{
		Type:               in.Type,
		Contact:            contactRefToWire(in.ContactID),
		Schedule:           in.Schedule.toWire(),
		LineItems:          lineItemsToWire(in.LineItems),
		LineAmountTypes:    in.LineAmountTypes,
		Reference:          in.Reference,
		BrandingThemeID:    in.BrandingThemeID,
		CurrencyCode:       in.CurrencyCode,
		Status:             in.Status,
		ApprovedForSending: in.ApprovedForSending,
	}
}

type repeatingInvoicesEnvelope struct {
	RepeatingInvoices []wireRepeatingInvoice `json:"RepeatingInvoices"`
}

// ListRepeatingInvoices returns the full collection; the endpoint is
// not paginated.
func (c *Client) ListRepeatingInvoices(ctx context.Context, opt ListOptions) ([]RepeatingInvoice, error) {
	var env repeatingInvoicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/RepeatingInvoices", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.RepeatingInvoices, repeatingInvoiceFromWire), nil
}

// GetRepeatingInvoice fetches a single template by identifier.
func (c *Client) GetRepeatingInvoice(ctx context.Context, id string) (RepeatingInvoice, error) {
	var env repeatingInvoicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/RepeatingInvoices/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return RepeatingInvoice{}, err
	}
	w, err := firstOf(env.RepeatingInvoices, "repeating invoice", id)
	if err != nil {
		return RepeatingInvoice{}, err
	}
	return repeatingInvoiceFromWire(w), nil
}

// CreateRepeatingInvoice adds a template.
func (c *Client) CreateRepeatingInvoice(ctx context.Context, in RepeatingInvoiceInput) (RepeatingInvoice, error) {
	var env repeatingInvoicesEnvelope
	if err := c.do(ctx, http.MethodPost, "/RepeatingInvoices", nil, in.toWire(), &env); err != nil {
		return RepeatingInvoice{}, err
	}
	w, err := firstOf(env.RepeatingInvoices, "repeating invoice", "")
	if err != nil {
		return RepeatingInvoice{}, err
	}
	return repeatingInvoiceFromWire(w), nil
}

// UpdateRepeatingInvoice sparse-updates a template.
func (c *Client) UpdateRepeatingInvoice(ctx context.Context, id string, in RepeatingInvoiceInput) (RepeatingInvoice, error) {
	var env repeatingInvoicesEnvelope
	if err := c.do(ctx, http.MethodPost, "/RepeatingInvoices/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return RepeatingInvoice{}, err
	}
	w, err := firstOf(env.RepeatingInvoices, "repeating invoice", id)
	if err != nil {
		return RepeatingInvoice{}, err
	}
	return repeatingInvoiceFromWire(w), nil
}

// DeleteRepeatingInvoice soft-deletes a template by setting its status
// to DELETED.
func (c *Client) DeleteRepeatingInvoice(ctx context.Context, id string) (RepeatingInvoice, error) {
	return c.UpdateRepeatingInvoice(ctx, id, RepeatingInvoiceInput{
		Status: ptr(RepeatingInvoiceStatusDeleted),
	})
}
