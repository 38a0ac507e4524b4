package xero

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// ItemDetails is the sales or purchase side of an item.
type ItemDetails struct {
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
	AccountCode     string           `json:"accountCode,omitempty"`
	TaxType         string           `json:"taxType,omitempty"`
	COGSAccountCode string           `json:"cogsAccountCode,omitempty"`
}

type wireItemDetails struct {
	UnitPrice       *decimal.Decimal `json:"UnitPrice,omitempty"`
	AccountCode     *string          `json:"AccountCode,omitempty"`
	TaxType         *string          `json:"TaxType,omitempty"`
	COGSAccountCode *string          `json:"COGSAccountCode,omitempty"`
}

func itemDetailsFromWire(w *wireItemDetails) *ItemDetails {
	if w == nil {
		return nil
	}
	return &ItemDetails{
		UnitPrice:       w.UnitPrice,
		AccountCode:     deref(w.AccountCode),
		TaxType:         deref(w.TaxType),
		COGSAccountCode: deref(w.COGSAccountCode),
	}
}

// ItemDetailsInput is the sparse write shape for one side of an item.
// The sparse-inclusion rule applies recursively: a nil *ItemDetailsInput
// leaves the whole sub-object untouched.
type ItemDetailsInput struct {
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
	AccountCode     *string          `json:"accountCode,omitempty"`
	TaxType         *string          `json:"taxType,omitempty"`
	COGSAccountCode *string          `json:"cogsAccountCode,omitempty"`
}

func (in *ItemDetailsInput) toWire() *wireItemDetails {
	if in == nil {
		return nil
	}
	return &wireItemDetails{
		UnitPrice:       in.UnitPrice,
		AccountCode:     in.AccountCode,
		TaxType:         in.TaxType,
		COGSAccountCode: in.COGSAccountCode,
	}
}

// Item is a product or service. QuantityOnHand and TotalCostPool are
// remote-computed for tracked inventory.
type Item struct {
	ID                        string           `json:"id"`
	Code                      string           `json:"code,omitempty"`
	Name                      string           `json:"name,omitempty"`
	Description               string           `json:"description,omitempty"`
	PurchaseDescription       string           `json:"purchaseDescription,omitempty"`
	IsSold                    *bool            `json:"isSold,omitempty"`
	IsPurchased               *bool            `json:"isPurchased,omitempty"`
	IsTrackedAsInventory      *bool            `json:"isTrackedAsInventory,omitempty"`
	InventoryAssetAccountCode string           `json:"inventoryAssetAccountCode,omitempty"`
	SalesDetails              *ItemDetails     `json:"salesDetails,omitempty"`
	PurchaseDetails           *ItemDetails     `json:"purchaseDetails,omitempty"`
	QuantityOnHand            *decimal.Decimal `json:"quantityOnHand,omitempty"`
	TotalCostPool             *decimal.Decimal `json:"totalCostPool,omitempty"`
	UpdatedDateUTC            string           `json:"updatedDateUtc,omitempty"`
}

type wireItem struct {
	ItemID                    *string          `json:"ItemID,omitempty"`
	Code                      *string          `json:"Code,omitempty"`
	Name                      *string          `json:"Name,omitempty"`
	Description               *string          `json:"Description,omitempty"`
	PurchaseDescription       *string          `json:"PurchaseDescription,omitempty"`
	IsSold                    *bool            `json:"IsSold,omitempty"`
	IsPurchased               *bool            `json:"IsPurchased,omitempty"`
	IsTrackedAsInventory      *bool            `json:"IsTrackedAsInventory,omitempty"`
	InventoryAssetAccountCode *string          `json:"InventoryAssetAccountCode,omitempty"`
	SalesDetails              *wireItemDetails `json:"SalesDetails,omitempty"`
	PurchaseDetails           *wireItemDetails `json:"PurchaseDetails,omitempty"`
	QuantityOnHand            *decimal.Decimal `json:"QuantityOnHand,omitempty"`
	TotalCostPool             *decimal.Decimal `json:"TotalCostPool,omitempty"`
	UpdatedDateUTC            *string          `json:"UpdatedDateUTC,omitempty"`
}

func itemFromWire(w wireItem) Item {
	return Item{
		ID:                        deref(w.ItemID),
		Code:                      deref(w.Code),
		Name:                      deref(w.Name),
		Description:               deref(w.Description),
		PurchaseDescription:       deref(w.PurchaseDescription),
		IsSold:                    w.IsSold,
		IsPurchased:               w.IsPurchased,
		IsTrackedAsInventory:      w.IsTrackedAsInventory,
		InventoryAssetAccountCode: deref(w.InventoryAssetAccountCode),
		SalesDetails:              itemDetailsFromWire(w.SalesDetails),
		PurchaseDetails:           itemDetailsFromWire(w.PurchaseDetails),
		QuantityOnHand:            w.QuantityOnHand,
		TotalCostPool:             w.TotalCostPool,
		UpdatedDateUTC:            deref(w.UpdatedDateUTC),
	}
}

// ItemInput is the sparse write shape for items.
type ItemInput struct {
	Code                      *string           `json:"code,omitempty"`
	Name                      *string           `json:"name,omitempty"`
	Description               *string           `json:"description,omitempty"`
	PurchaseDescription       *string           `json:"purchaseDescription,omitempty"`
	IsSold                    *bool             `json:"isSold,omitempty"`
	IsPurchased               *bool             `json:"isPurchased,omitempty"`
	IsTrackedAsInventory      *bool             `json:"isTrackedAsInventory,omitempty"`
	InventoryAssetAccountCode *string           `json:"inventoryAssetAccountCode,omitempty"`
	SalesDetails              *ItemDetailsInput `json:"salesDetails,omitempty"`
	PurchaseDetails           *ItemDetailsInput `json:"purchaseDetails,omitempty"`
}

func (in ItemInput) toWire() wireItem {
	return wireItem{
		Code:                      in.Code,
		Name:                      in.Name,
		Description:               in.Description,
		PurchaseDescription:       in.PurchaseDescription,
		IsSold:                    in.IsSold,
		IsPurchased:               in.IsPurchased,
		IsTrackedAsInventory:      in.IsTrackedAsInventory,
		InventoryAssetAccountCode: in.InventoryAssetAccountCode,
		SalesDetails:              in.SalesDetails.toWire(),
		PurchaseDetails:           in.PurchaseDetails.toWire(),
	}
}

type itemsEnvelope struct {
	Items []wireItem `json:"Items"`
}

// ListItems returns the full item collection; the endpoint is not
// paginated.
func (c *Client) ListItems(ctx context.Context, opt ListOptions) ([]Item, error) {
	var env itemsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Items", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.Items, itemFromWire), nil
}

// GetItem fetches a single item by identifier or code.
func (c *Client) GetItem(ctx context.Context, id string) (Item, error) {
	var env itemsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Items/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Item{}, err
	}
	w, err := firstOf(env.Items, "item", id)
	if err != nil {
		return Item{}, err
	}
	return itemFromWire(w), nil
}

// CreateItem submits a new item. Xero creates via PUT here.
func (c *Client) CreateItem(ctx context.Context, in ItemInput) (Item, error) {
	var env itemsEnvelope
	if err := c.do(ctx, http.MethodPut, "/Items", nil, in.toWire(), &env); err != nil {
		return Item{}, err
	}
	w, err := firstOf(env.Items, "item", "")
	if err != nil {
		return Item{}, err
	}
	return itemFromWire(w), nil
}

// UpdateItem applies a sparse update to an existing item.
func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) (Item, error) {
	var env itemsEnvelope
	if err := c.do(ctx, http.MethodPost, "/Items/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return Item{}, err
	}
	w, err := firstOf(env.Items, "item", id)
	if err != nil {
		return Item{}, err
	}
	return itemFromWire(w), nil
}

// DeleteItem removes an item. Items are one of the few kinds with true
// HTTP deletion; a 204 means gone.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Items/"+url.PathEscape(id), nil, nil, nil)
}
