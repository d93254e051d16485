package orders

import (
	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/printful"
)

// Recipient is the shipping destination as submitted by the storefront.
// Completeness is checked field by field in BuildPayload so the storefront
// can point at the first gap in form order.
type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
}

// BuildPayload turns the session cart into the provider order request. The
// cart is checked before the recipient: an empty cart makes every other field
// irrelevant, so it is always the error reported.
func BuildPayload(recipient Recipient, c cart.Cart) (*printful.OrderRequest, error) {
	if c.IsEmpty() {
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}
	if field, ok := firstMissingField(recipient); ok {
		return nil, errors.New(errors.CodeValidation, "recipient is incomplete").
			WithDetails(map[string]any{"field": field})
	}

	items := make([]printful.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, printful.OrderItem{
			SyncVariantID: line.VariantID,
			Quantity:      line.Quantity,
		})
	}

	return &printful.OrderRequest{
		Recipient: printful.OrderRecipient{
			Name:        recipient.Name,
			Address1:    recipient.Address1,
			City:        recipient.City,
			StateCode:   recipient.StateCode,
			CountryCode: recipient.CountryCode,
			Zip:         recipient.Zip,
		},
		Items: items,
	}, nil
}

// firstMissingField walks the recipient in submission order and names the
// first blank field, matching the order the storefront renders the form.
func firstMissingField(r Recipient) (string, bool) {
	checks := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"address1", r.Address1},
		{"city", r.City},
		{"state_code", r.StateCode},
		{"country_code", r.CountryCode},
		{"zip", r.Zip},
	}
	for _, check := range checks {
		if check.value == "" {
			return check.field, true
		}
	}
	return "", false
}
