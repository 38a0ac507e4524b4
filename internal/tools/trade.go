package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type itemDetailsArgs struct {
	UnitPrice       *float64 `json:"unitPrice,omitempty" jsonschema:"Unit price"`
	AccountCode     *string  `json:"accountCode,omitempty" jsonschema:"Account the side posts to"`
	TaxType         *string  `json:"taxType,omitempty" jsonschema:"Tax type code"`
	COGSAccountCode *string  `json:"cogsAccountCode,omitempty" jsonschema:"Cost of goods sold account, tracked inventory only"`
}

func (a *itemDetailsArgs) input() *xero.ItemDetailsInput {
	if a == nil {
		return nil
	}
	return &xero.ItemDetailsInput{
		UnitPrice:       dec(a.UnitPrice),
		AccountCode:     a.AccountCode,
		TaxType:         a.TaxType,
		COGSAccountCode: a.COGSAccountCode,
	}
}

type itemArgs struct {
	Code                      *string          `json:"code,omitempty" jsonschema:"Item code, unique within the tenant"`
	Name                      *string          `json:"name,omitempty" jsonschema:"Item name"`
	Description               *string          `json:"description,omitempty" jsonschema:"Sales description"`
	PurchaseDescription       *string          `json:"purchaseDescription,omitempty" jsonschema:"Purchase description"`
	IsSold                    *bool            `json:"isSold,omitempty" jsonschema:"Item is available on sales documents"`
	IsPurchased               *bool            `json:"isPurchased,omitempty" jsonschema:"Item is available on purchase documents"`
	IsTrackedAsInventory      *bool            `json:"isTrackedAsInventory,omitempty" jsonschema:"Track quantity and cost for this item"`
	InventoryAssetAccountCode *string          `json:"inventoryAssetAccountCode,omitempty" jsonschema:"Asset account for tracked inventory"`
	SalesDetails              *itemDetailsArgs `json:"salesDetails,omitempty" jsonschema:"Sales side pricing"`
	PurchaseDetails           *itemDetailsArgs `json:"purchaseDetails,omitempty" jsonschema:"Purchase side pricing"`
}

func (a itemArgs) input() xero.ItemInput {
	return xero.ItemInput{
		Code:                      a.Code,
		Name:                      a.Name,
		Description:               a.Description,
		PurchaseDescription:       a.PurchaseDescription,
		IsSold:                    a.IsSold,
		IsPurchased:               a.IsPurchased,
		IsTrackedAsInventory:      a.IsTrackedAsInventory,
		InventoryAssetAccountCode: a.InventoryAssetAccountCode,
		SalesDetails:              a.SalesDetails.input(),
		PurchaseDetails:           a.PurchaseDetails.input(),
	}
}

type updateItemArgs struct {
	ID string `json:"id" jsonschema:"Item identifier or code"`
	itemArgs
}

type purchaseOrderArgs struct {
	ContactID            *string        `json:"contactId,omitempty" jsonschema:"Supplier contact identifier (UUID)"`
	Date                 *string        `json:"date,omitempty" jsonschema:"Order date (YYYY-MM-DD)"`
	DeliveryDate         *string        `json:"deliveryDate,omitempty" jsonschema:"Requested delivery date (YYYY-MM-DD)"`
	Reference            *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	Status               *string        `json:"status,omitempty" jsonschema:"DRAFT, SUBMITTED, AUTHORISED or BILLED"`
	LineAmountTypes      *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	LineItems            []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Order lines"`
	CurrencyCode         *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	DeliveryAddress      *string        `json:"deliveryAddress,omitempty" jsonschema:"Delivery address"`
	AttentionTo          *string        `json:"attentionTo,omitempty" jsonschema:"Attention-to line"`
	DeliveryInstructions *string        `json:"deliveryInstructions,omitempty" jsonschema:"Delivery instructions"`
}

func (a purchaseOrderArgs) input() xero.PurchaseOrderInput {
	return xero.PurchaseOrderInput{
		ContactID:            a.ContactID,
		Date:                 a.Date,
		DeliveryDate:         a.DeliveryDate,
		Reference:            a.Reference,
		Status:               a.Status,
		LineAmountTypes:      a.LineAmountTypes,
		LineItems:            lineItemInputs(a.LineItems),
		CurrencyCode:         a.CurrencyCode,
		DeliveryAddress:      a.DeliveryAddress,
		AttentionTo:          a.AttentionTo,
		DeliveryInstructions: a.DeliveryInstructions,
	}
}

type updatePurchaseOrderArgs struct {
	ID string `json:"id" jsonschema:"Purchase order identifier (UUID)"`
	purchaseOrderArgs
}

type quoteArgs struct {
	ContactID       *string        `json:"contactId,omitempty" jsonschema:"Contact identifier (UUID)"`
	Date            *string        `json:"date,omitempty" jsonschema:"Quote date (YYYY-MM-DD)"`
	ExpiryDate      *string        `json:"expiryDate,omitempty" jsonschema:"Expiry date (YYYY-MM-DD)"`
	Reference       *string        `json:"reference,omitempty" jsonschema:"Free-text reference"`
	Title           *string        `json:"title,omitempty" jsonschema:"Quote title"`
	Summary         *string        `json:"summary,omitempty" jsonschema:"Quote summary"`
	Terms           *string        `json:"terms,omitempty" jsonschema:"Terms shown on the quote"`
	Status          *string        `json:"status,omitempty" jsonschema:"DRAFT, SENT, ACCEPTED, DECLINED or INVOICED"`
	LineAmountTypes *string        `json:"lineAmountTypes,omitempty" jsonschema:"Exclusive, Inclusive or NoTax"`
	LineItems       []lineItemArgs `json:"lineItems,omitempty" jsonschema:"Quote lines"`
	CurrencyCode    *string        `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
}

func (a quoteArgs) input() xero.QuoteInput {
	return xero.QuoteInput{
		ContactID:       a.ContactID,
		Date:            a.Date,
		ExpiryDate:      a.ExpiryDate,
		Reference:       a.Reference,
		Title:           a.Title,
		Summary:         a.Summary,
		Terms:           a.Terms,
		Status:          a.Status,
		LineAmountTypes: a.LineAmountTypes,
		LineItems:       lineItemInputs(a.LineItems),
		CurrencyCode:    a.CurrencyCode,
	}
}

type updateQuoteArgs struct {
	ID string `json:"id" jsonschema:"Quote identifier (UUID)"`
	quoteArgs
}

func (r *Registry) registerTrade() {
	add(r, "list-items", "List products and services.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListItems(ctx, in.options())
		})

	add(r, "get-item", "Fetch one item by identifier or code.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetItem(ctx, in.ID)
		})

	add(r, "create-item", "Create a product or service. Code is required by the API.",
		func(ctx context.Context, c *xero.Client, in itemArgs) (any, error) {
			return c.CreateItem(ctx, in.input())
		})

	add(r, "update-item", "Update an item. Omitted fields keep their stored value; an explicit false is applied, not ignored.",
		func(ctx context.Context, c *xero.Client, in updateItemArgs) (any, error) {
			return c.UpdateItem(ctx, in.ID, in.input())
		})

	add(r, "delete-item", "Permanently delete an item. Items used on documents cannot be deleted.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			if err := c.DeleteItem(ctx, in.ID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "deleted"}, nil
		})

	add(r, "list-purchase-orders", "List purchase orders, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListPurchaseOrders(ctx, in.options())
		})

	add(r, "get-purchase-order", "Fetch one purchase order by identifier, lines included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetPurchaseOrder(ctx, in.ID)
		})

	add(r, "create-purchase-order", "Create a purchase order with a supplier.",
		func(ctx context.Context, c *xero.Client, in purchaseOrderArgs) (any, error) {
			return c.CreatePurchaseOrder(ctx, in.input())
		})

	add(r, "update-purchase-order", "Update a purchase order. Omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updatePurchaseOrderArgs) (any, error) {
			return c.UpdatePurchaseOrder(ctx, in.ID, in.input())
		})

	add(r, "delete-purchase-order", "Delete a draft purchase order.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.DeletePurchaseOrder(ctx, in.ID)
		})

	add(r, "list-quotes", "List quotes, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListQuotes(ctx, in.options())
		})

	add(r, "get-quote", "Fetch one quote by identifier, lines included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetQuote(ctx, in.ID)
		})

	add(r, "create-quote", "Create a quote for a contact.",
		func(ctx context.Context, c *xero.Client, in quoteArgs) (any, error) {
			return c.CreateQuote(ctx, in.input())
		})

	add(r, "update-quote", "Update a quote, including status transitions like SENT or ACCEPTED.",
		func(ctx context.Context, c *xero.Client, in updateQuoteArgs) (any, error) {
			return c.UpdateQuote(ctx, in.ID, in.input())
		})
}
