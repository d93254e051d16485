package catalog

// Colors returns the distinct real colors of the catalog in first-appearance
// order. The Standard sentinel is excluded: a product with no color axis must
// not present a one-entry color chooser.
func Colors(variants []Variant) []string {
	seen := make(map[string]struct{}, len(variants))
	colors := make([]string, 0, len(variants))
	for _, v := range variants {
		if v.Color == StandardOption {
			continue
		}
		if _, ok := seen[v.Color]; ok {
			continue
		}
		seen[v.Color] = struct{}{}
		colors = append(colors, v.Color)
	}
	return colors
}

// Sizes returns the distinct sizes available for the given color selection in
// first-appearance order. An empty color means no filtering: single-axis
// products list sizes across the whole catalog.
func Sizes(variants []Variant, color string) []string {
	seen := make(map[string]struct{}, len(variants))
	sizes := make([]string, 0, len(variants))
	for _, v := range variants {
		if color != "" && v.Color != color {
			continue
		}
		if _, ok := seen[v.Size]; ok {
			continue
		}
		seen[v.Size] = struct{}{}
		sizes = append(sizes, v.Size)
	}
	return sizes
}
