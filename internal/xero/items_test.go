package xero

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestUpdateItemExplicitFalseIsTransmitted(t *testing.T) {
	var raw []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Items/item-1" {
			t.Errorf("%s %s, want POST /Items/item-1", r.Method, r.URL.Path)
		}
		raw, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"Items":[{"ItemID":"item-1","IsSold":false}]}`))
	}))

	// An explicit false must reach the wire; everything unset stays out
	// of the body entirely.
	item, err := c.UpdateItem(context.Background(), "item-1", ItemInput{IsSold: ptr(false)})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}

	if string(raw) != `{"IsSold":false}` {
		t.Errorf("body = %s, want {\"IsSold\":false}", raw)
	}
	if item.IsSold == nil || *item.IsSold {
		t.Errorf("IsSold = %v, want false", item.IsSold)
	}
}

func TestUpdateItemNestedDetails(t *testing.T) {
	var raw []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"Items":[{"ItemID":"item-1"}]}`))
	}))

	price := decimal.NewFromFloat(12.50)
	_, err := c.UpdateItem(context.Background(), "item-1", ItemInput{
		SalesDetails: &ItemDetailsInput{
			UnitPrice:   &price,
			AccountCode: ptr("200"),
		},
	})
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}

	want := `{"SalesDetails":{"UnitPrice":12.5,"AccountCode":"200"}}`
	if string(raw) != want {
		t.Errorf("body = %s, want %s", raw, want)
	}
}

func TestGetItemMapsDetails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Items":[{
			"ItemID": "item-1",
			"Code": "WIDGET",
			"Name": "Widget",
			"IsTrackedAsInventory": true,
			"SalesDetails": {"UnitPrice": 99.99, "AccountCode": "200"},
			"QuantityOnHand": 14
		}]}`))
	}))

	item, err := c.GetItem(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}

	if item.Code != "WIDGET" {
		t.Errorf("Code = %q, want WIDGET", item.Code)
	}
	if item.IsTrackedAsInventory == nil || !*item.IsTrackedAsInventory {
		t.Errorf("IsTrackedAsInventory = %v, want true", item.IsTrackedAsInventory)
	}
	if item.SalesDetails == nil || item.SalesDetails.AccountCode != "200" {
		t.Fatalf("SalesDetails = %+v, want account code 200", item.SalesDetails)
	}
	if !item.SalesDetails.UnitPrice.Equal(decimal.NewFromFloat(99.99)) {
		t.Errorf("UnitPrice = %v, want 99.99", item.SalesDetails.UnitPrice)
	}
	if item.QuantityOnHand == nil || !item.QuantityOnHand.Equal(decimal.NewFromInt(14)) {
		t.Errorf("QuantityOnHand = %v, want 14", item.QuantityOnHand)
	}
}
