package orders

import (
	"testing"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func fullRecipient() Recipient {
	return Recipient{
		Name:        "Ada Lovelace",
		Address1:    "12 Analytical Way",
		City:        "London",
		StateCode:   "LND",
		CountryCode: "GB",
		Zip:         "EC1A 1BB",
	}
}

func filledCart(t *testing.T) cart.Cart {
	t.Helper()
	unit, err := decimal.NewFromString("24.50")
	if err != nil {
		t.Fatalf("decimal: %v", err)
	}
	c := cart.Cart{}
	c = c.Add(cart.Line{VariantID: 5, ProductName: "Logo Tee", VariantLabel: "Red / M", UnitPrice: unit, Quantity: 2})
	c = c.Add(cart.Line{VariantID: 7, ProductName: "Logo Tee", VariantLabel: "Blue / M", UnitPrice: unit, Quantity: 1})
	return c
}

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	payload, err := BuildPayload(fullRecipient(), filledCart(t))
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}

	if payload.Recipient.Name != "Ada Lovelace" || payload.Recipient.Zip != "EC1A 1BB" {
		t.Fatalf("unexpected recipient: %+v", payload.Recipient)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(payload.Items))
	}
	if payload.Items[0].SyncVariantID != 5 || payload.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", payload.Items[0])
	}
	if payload.Items[1].SyncVariantID != 7 || payload.Items[1].Quantity != 1 {
		t.Fatalf("unexpected second item: %+v", payload.Items[1])
	}
}

func TestBuildPayloadEmptyCartWinsOverMissingRecipient(t *testing.T) {
	t.Parallel()

	_, err := BuildPayload(Recipient{}, cart.Cart{})
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "cart is empty" {
		t.Fatalf("empty cart must be reported first, got %q", typed.Message())
	}
}

func TestBuildPayloadNamesFirstMissingField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		edit  func(*Recipient)
		field string
	}{
		{"name", func(r *Recipient) { r.Name = "" }, "name"},
		{"address1", func(r *Recipient) { r.Address1 = "" }, "address1"},
		{"city", func(r *Recipient) { r.City = "" }, "city"},
		{"state_code", func(r *Recipient) { r.StateCode = "" }, "state_code"},
		{"country_code", func(r *Recipient) { r.CountryCode = "" }, "country_code"},
		{"zip", func(r *Recipient) { r.Zip = "" }, "zip"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recipient := fullRecipient()
			tc.edit(&recipient)

			_, err := BuildPayload(recipient, filledCart(t))
			typed := errors.As(err)
			if typed == nil || typed.Code() != errors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			details, ok := typed.Details().(map[string]any)
			if !ok || details["field"] != tc.field {
				t.Fatalf("expected field %q in details, got %v", tc.field, typed.Details())
			}
		})
	}
}

func TestBuildPayloadReportsEarliestField(t *testing.T) {
	t.Parallel()

	recipient := fullRecipient()
	recipient.City = ""
	recipient.Zip = ""

	_, err := BuildPayload(recipient, filledCart(t))
	typed := errors.As(err)
	if typed == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	details := typed.Details().(map[string]any)
	if details["field"] != "city" {
		t.Fatalf("expected earliest missing field city, got %v", details["field"])
	}
}
