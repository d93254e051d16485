package printful

import "encoding/json"

// envelope is the wrapper Printful puts around every response. On failure the
// result field usually carries a human-readable string and error carries the
// structured reason.
type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error"`
}

type apiError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// SyncProductSummary is one row of the store product listing.
type SyncProductSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Variants     int    `json:"variants"`
}

// SyncProduct is the product header on the detail endpoint.
type SyncProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// File is an asset attached to a sync variant.
type File struct {
	Type       string `json:"type"`
	PreviewURL string `json:"preview_url"`
}

// SyncVariant is a purchasable unit as Printful returns it. The name is a
// composite "<product> - <color> - <size>" string; parsing it into axes is the
// catalog package's concern.
type SyncVariant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RetailPrice string `json:"retail_price"`
	Currency    string `json:"currency"`
	Files       []File `json:"files"`
}

// ProductDetail is the full detail document for one store product.
type ProductDetail struct {
	SyncProduct  SyncProduct   `json:"sync_product"`
	SyncVariants []SyncVariant `json:"sync_variants"`
}

// OrderRecipient is the shipping destination for an order.
type OrderRecipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
}

// OrderItem references a sync variant by id.
type OrderItem struct {
	SyncVariantID int64 `json:"sync_variant_id"`
	Quantity      int   `json:"quantity"`
}

// OrderRequest is the payload POSTed to the orders endpoint.
type OrderRequest struct {
	Recipient OrderRecipient `json:"recipient"`
	Items     []OrderItem    `json:"items"`
}

// OrderConfirmation is the subset of the created order we surface.
type OrderConfirmation struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
