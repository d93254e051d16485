package cart

import "github.com/shopspring/decimal"

// Line is one cart row. At most one Line exists per variant id; repeat adds
// bump the quantity instead of duplicating the row.
type Line struct {
	VariantID    int64           `json:"variant_id"`
	ProductName  string          `json:"product_name"`
	VariantLabel string          `json:"variant_label"`
	ThumbnailURL string          `json:"thumbnail_url"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
}

// Total is the line subtotal, recomputed on every read.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an insertion-ordered sequence of lines. All operations are value
// semantic: they return a fresh Cart and never mutate the receiver, so a
// caller holding an old value never observes a half-applied update.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add coalesces by variant identity: an existing variant gains quantity in
// place (order preserved), a new variant is appended last.
func (c Cart) Add(line Line) Cart {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	next := make([]Line, len(c.Lines))
	copy(next, c.Lines)
	for i := range next {
		if next[i].VariantID == line.VariantID {
			next[i].Quantity += line.Quantity
			return Cart{Lines: next}
		}
	}
	return Cart{Lines: append(next, line)}
}

// Remove drops the line for the given variant. Removing an absent variant is
// an idempotent no-op.
func (c Cart) Remove(variantID int64) Cart {
	next := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.VariantID == variantID {
			continue
		}
		next = append(next, line)
	}
	return Cart{Lines: next}
}

// ItemCount sums quantities across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// GrandTotal folds the line subtotals. Derived on every read rather than
// stored, so it can never drift from the line sequence.
func (c Cart) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Total())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
