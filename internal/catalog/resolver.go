package catalog

import "errors"

// ErrUnresolvedSelection means no variant matches the current color/size pick.
// It is always user-recoverable: the storefront disables add-to-cart instead
// of surfacing a hard failure.
var ErrUnresolvedSelection = errors.New("no variant matches the current selection")

// Resolve finds the unique variant for a (color, size) selection. When the
// catalog has no real color axis the color input is ignored, so size-only
// products resolve without the caller passing a sentinel. The first match in
// catalog order wins; the provider guarantees at most one variant per concrete
// color and size pair.
func Resolve(variants []Variant, color, size string) (Variant, error) {
	if size == "" {
		return Variant{}, ErrUnresolvedSelection
	}
	ignoreColor := len(Colors(variants)) == 0
	for _, v := range variants {
		if !ignoreColor && v.Color != color {
			continue
		}
		if v.Size == size {
			return v, nil
		}
	}
	return Variant{}, ErrUnresolvedSelection
}

// DisplayImage picks the image shown for the current selection: the resolved
// variant's preview when it has one, the product thumbnail otherwise. The
// fallback order keeps the picture consistent with the selection without ever
// going blank before a size is chosen.
func DisplayImage(resolved *Variant, productThumbnail string) string {
	if resolved != nil && resolved.PreviewImageURL != "" {
		return resolved.PreviewImageURL
	}
	return productThumbnail
}
