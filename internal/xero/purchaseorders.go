package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// Purchase order statuses.
const (
	PurchaseOrderStatusDraft      = "DRAFT"
	PurchaseOrderStatusSubmitted  = "SUBMITTED"
	PurchaseOrderStatusAuthorised = "AUTHORISED"
	PurchaseOrderStatusBilled     = "BILLED"
	PurchaseOrderStatusDeleted    = "DELETED"
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID                   string           `json:"id"`
	Number               string           `json:"number,omitempty"`
	Contact              *ContactRef      `json:"contact,omitempty"`
	Date                 string           `json:"date,omitempty"`
	DeliveryDate         string           `json:"deliveryDate,omitempty"`
	Reference            string           `json:"reference,omitempty"`
	Status               string           `json:"status,omitempty"`
	LineAmountTypes      string           `json:"lineAmountTypes,omitempty"`
	LineItems            []LineItem       `json:"lineItems,omitempty"`
	CurrencyCode         string           `json:"currencyCode,omitempty"`
	DeliveryAddress      string           `json:"deliveryAddress,omitempty"`
	AttentionTo          string           `json:"attentionTo,omitempty"`
	DeliveryInstructions string           `json:"deliveryInstructions,omitempty"`
	SubTotal             *decimal.Decimal `json:"subTotal,omitempty"`
	TotalTax             *decimal.Decimal `json:"totalTax,omitempty"`
	Total                *decimal.Decimal `json:"total,omitempty"`
	UpdatedDateUTC       string           `json:"updatedDateUtc,omitempty"`
}

type wirePurchaseOrder struct {
	PurchaseOrderID      *string          `json:"PurchaseOrderID,omitempty"`
	PurchaseOrderNumber  *string          `json:"PurchaseOrderNumber,omitempty"`
	Contact              *wireContactRef  `json:"Contact,omitempty"`
	Date                 *string          `json:"Date,omitempty"`
	DeliveryDate         *string          `json:"DeliveryDate,omitempty"`
	Reference            *string          `json:"Reference,omitempty"`
	Status               *string          `json:"Status,omitempty"`
	LineAmountTypes      *string          `json:"LineAmountTypes,omitempty"`
	LineItems            []wireLineItem   `json:"LineItems,omitempty"`
	CurrencyCode         *string          `json:"CurrencyCode,omitempty"`
	DeliveryAddress      *string          `json:"DeliveryAddress,omitempty"`
	AttentionTo          *string          `json:"AttentionTo,omitempty"`
	DeliveryInstructions *string          `json:"DeliveryInstructions,omitempty"`
	SubTotal             *decimal.Decimal `json:"SubTotal,omitempty"`
	TotalTax             *decimal.Decimal `json:"TotalTax,omitempty"`
	Total                *decimal.Decimal `json:"Total,omitempty"`
	UpdatedDateUTC       *string          `json:"UpdatedDateUTC,omitempty"`
}

func purchaseOrderFromWire(w wirePurchaseOrder) PurchaseOrder {
	return PurchaseOrder{
		ID:                   deref(w.PurchaseOrderID),
		Number:               deref(w.PurchaseOrderNumber),
		Contact:              contactRefFromWire(w.Contact),
		Date:                 deref(w.Date),
		DeliveryDate:         deref(w.DeliveryDate),
		Reference:            deref(w.Reference),
		Status:               deref(w.Status),
		LineAmountTypes:      deref(w.LineAmountTypes),
		LineItems:            mapSlice(w.LineItems, lineItemFromWire),
		CurrencyCode:         deref(w.CurrencyCode),
		DeliveryAddress:      deref(w.DeliveryAddress),
		AttentionTo:          deref(w.AttentionTo),
		DeliveryInstructions: deref(w.DeliveryInstructions),
		SubTotal:             w.SubTotal,
		TotalTax:             w.TotalTax,
		Total:                w.Total,
		UpdatedDateUTC:       deref(w.UpdatedDateUTC),
	}
}

// PurchaseOrderInput is the sparse write shape for purchase orders.
type PurchaseOrderInput struct {
	ContactID            *string         `json:"contactId,omitempty"`
	Date                 *string         `json:"date,omitempty"`
	DeliveryDate         *string         `json:"deliveryDate,omitempty"`
	Reference            *string         `json:"reference,omitempty"`
	Status               *string         `json:"status,omitempty"`
	LineAmountTypes      *string         `json:"lineAmountTypes,omitempty"`
	LineItems            []LineItemInput `json:"lineItems,omitempty"`
	CurrencyCode         *string         `json:"currencyCode,omitempty"`
	DeliveryAddress      *string         `json:"deliveryAddress,omitempty"`
	AttentionTo          *string         `json:"attentionTo,omitempty"`
	DeliveryInstructions *string         `json:"deliveryInstructions,omitempty"`
}

func (in PurchaseOrderInput) toWire() wirePurchaseOrder {
	w := wirePurchaseOrder{
		Contact:              contactRefToWire(in.ContactID),
		Date:                 in.Date,
		DeliveryDate:         in.DeliveryDate,
		Reference:            in.Reference,
		Status:               in.Status,
		LineAmountTypes:      in.LineAmountTypes,
		CurrencyCode:         in.CurrencyCode,
		DeliveryAddress:      in.DeliveryAddress,
		AttentionTo:          in.AttentionTo,
		DeliveryInstructions: in.DeliveryInstructions,
	}
	if in.LineItems != nil {
		w.LineItems = lineItemsToWire(in.LineItems)
	}
	return w
}

type purchaseOrdersEnvelope struct {
	PurchaseOrders []wirePurchaseOrder `json:"PurchaseOrders"`
}

// ListPurchaseOrders returns one page of purchase orders.
func (c *Client) ListPurchaseOrders(ctx context.Context, opt ListOptions) (Page[PurchaseOrder], error) {
	var env purchaseOrdersEnvelope
	if err := c.do(ctx, http.MethodGet, "/PurchaseOrders", opt.values(), nil, &env); err != nil {
		return Page[PurchaseOrder]{}, err
	}
	return newPage(mapSlice(env.PurchaseOrders, purchaseOrderFromWire), opt.page()), nil
}

// GetPurchaseOrder fetches a single purchase order by identifier.
func (c *Client) GetPurchaseOrder(ctx context.Context, id string) (PurchaseOrder, error) {
	var env purchaseOrdersEnvelope
	if err := c.do(ctx, http.MethodGet, "/PurchaseOrders/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return PurchaseOrder{}, err
	}
	w, err := firstOf(env.PurchaseOrders, "purchase order", id)
	if err != nil {
		return PurchaseOrder{}, err
	}
	return purchaseOrderFromWire(w), nil
}

// CreatePurchaseOrder submits a new purchase order.
func (c *Client) CreatePurchaseOrder(ctx context.Context, in PurchaseOrderInput) (PurchaseOrder, error) {
	var env purchaseOrdersEnvelope
	if err := c.do(ctx, http.MethodPost, "/PurchaseOrders", nil, in.toWire(), &env); err != nil {
		return PurchaseOrder{}, err
	}
	w, err := firstOf(env.PurchaseOrders, "purchase order", "")
	if err != nil {
		return PurchaseOrder{}, err
	}
	return purchaseOrderFromWire(w), nil
}

// UpdatePurchaseOrder applies a sparse update to an existing purchase
// order.
func (c *Client) UpdatePurchaseOrder(ctx context.Context, id string, in PurchaseOrderInput) (PurchaseOrder, error) {
	var env purchaseOrdersEnvelope
	if err := c.do(ctx, http.MethodPost, "/PurchaseOrders/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return PurchaseOrder{}, err
	}
	w, err := firstOf(env.PurchaseOrders, "purchase order", id)
	if err != nil {
		return PurchaseOrder{}, err
	}
	return purchaseOrderFromWire(w), nil
}

// DeletePurchaseOrder requests the DELETED transition.
func (c *Client) DeletePurchaseOrder(ctx context.Context, id string) (PurchaseOrder, error) {
	return c.UpdatePurchaseOrder(ctx, id, PurchaseOrderInput{Status: ptr(PurchaseOrderStatusDeleted)})
}
