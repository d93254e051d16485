package catalog

import (
	"strings"

	"github.com/paperthread/storefront-backend/pkg/printful"
	"github.com/shopspring/decimal"
)

// StandardOption marks a variant axis the product does not actually have. A
// mug with a single size parses to Standard/Standard and the storefront skips
// the corresponding chooser entirely.
const StandardOption = "Standard"

const nameDelimiter = " - "

// Variant is a provider sync variant normalized into selection axes.
type Variant struct {
	ID              int64           `json:"id"`
	Color           string          `json:"color"`
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	PreviewImageURL string          `json:"preview_image_url,omitempty"`
}

// ParseVariants normalizes every provider variant. It is total: no entry is
// ever dropped, and an unparseable name degrades to the Standard sentinel
// instead of failing the catalog.
func ParseVariants(raw []printful.SyncVariant) []Variant {
	variants := make([]Variant, 0, len(raw))
	for _, sv := range raw {
		color, size := splitName(sv.Name)
		variants = append(variants, Variant{
			ID:              sv.ID,
			Color:           color,
			Size:            size,
			Price:           parsePrice(sv.RetailPrice),
			Currency:        sv.Currency,
			PreviewImageURL: previewImage(sv.Files),
		})
	}
	return variants
}

// splitName consumes the trailing two tokens of the composite name as color
// and size. Consuming from the right is deliberate: product names may contain
// the delimiter themselves, but the provider always appends color and size
// last.
func splitName(name string) (color, size string) {
	parts := strings.Split(name, nameDelimiter)
	if len(parts) < 3 {
		return StandardOption, StandardOption
	}
	size = parts[len(parts)-1]
	color = parts[len(parts)-2]
	return color, size
}

func parsePrice(retail string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.TrimSpace(retail))
	if err != nil {
		return decimal.Zero
	}
	return price
}

func previewImage(files []printful.File) string {
	for _, f := range files {
		if f.Type == "preview" {
			return f.PreviewURL
		}
	}
	return ""
}
