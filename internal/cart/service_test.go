package cart

import (
	"context"
	"testing"
	"time"

	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type stubCatalog struct {
	products map[int64]*catalog.Product
	err      error
}

func (s *stubCatalog) ListProducts(ctx context.Context) ([]catalog.ProductSummary, error) {
	return nil, nil
}

func (s *stubCatalog) GetProduct(ctx context.Context, productID int64) (*catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	product, ok := s.products[productID]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}
	return product, nil
}

func price(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("decimal %q: %v", raw, err)
	}
	return d
}

func teeProduct(t *testing.T) *catalog.Product {
	t.Helper()
	return &catalog.Product{
		ID:           10,
		Name:         "Logo Tee",
		ThumbnailURL: "https://img.example/tee-thumb.png",
		Variants: []catalog.Variant{
			{ID: 5, Color: "Red", Size: "M", Price: price(t, "24.50"), Currency: "USD", PreviewImageURL: "https://img.example/red-m.png"},
			{ID: 6, Color: "Red", Size: "L", Price: price(t, "24.50"), Currency: "USD"},
			{ID: 7, Color: "Blue", Size: "M", Price: price(t, "26.00"), Currency: "USD"},
		},
	}
}

func mugProduct(t *testing.T) *catalog.Product {
	t.Helper()
	return &catalog.Product{
		ID:           20,
		Name:         "Camp Mug",
		ThumbnailURL: "https://img.example/mug-thumb.png",
		Variants: []catalog.Variant{
			{ID: 9, Color: catalog.StandardOption, Size: catalog.StandardOption, Price: price(t, "14.00"), Currency: "USD"},
		},
	}
}

func newTestService(t *testing.T, products ...*catalog.Product) Service {
	t.Helper()
	byID := map[int64]*catalog.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	svc, err := NewService(&stubCatalog{products: byID}, NewStore(time.Hour), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRequiresDeps(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, NewStore(time.Hour), nil); err == nil {
		t.Fatalf("expected error for nil catalog service")
	}
	if _, err := NewService(&stubCatalog{}, nil, nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestAddItemResolvesAndAggregates(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, teeProduct(t))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess-1", 10, "Red", "M", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess-1", 10, "Red", "M", 1); err != nil {
		t.Fatalf("second add: %v", err)
	}
	got, err := svc.AddItem(ctx, "sess-1", 10, "Blue", "M", 1)
	if err != nil {
		t.Fatalf("third add: %v", err)
	}

	if len(got.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(got.Lines))
	}
	if got.Lines[0].VariantID != 5 || got.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", got.Lines[0])
	}
	if got.Lines[1].VariantID != 7 || got.Lines[1].Quantity != 1 {
		t.Fatalf("unexpected second line: %+v", got.Lines[1])
	}
	if got.ItemCount() != 3 {
		t.Fatalf("expected item count 3, got %d", got.ItemCount())
	}
}

func TestAddItemUsesPreviewThenThumbnail(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, teeProduct(t))
	ctx := context.Background()

	withPreview, err := svc.AddItem(ctx, "sess-1", 10, "Red", "M", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := withPreview.Lines[0].ThumbnailURL; got != "https://img.example/red-m.png" {
		t.Fatalf("expected variant preview, got %q", got)
	}

	withoutPreview, err := svc.AddItem(ctx, "sess-2", 10, "Red", "L", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := withoutPreview.Lines[0].ThumbnailURL; got != "https://img.example/tee-thumb.png" {
		t.Fatalf("expected product thumbnail fallback, got %q", got)
	}
}

func TestAddItemLabels(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, teeProduct(t), mugProduct(t))
	ctx := context.Background()

	tee, err := svc.AddItem(ctx, "sess-1", 10, "Red", "M", 1)
	if err != nil {
		t.Fatalf("tee add: %v", err)
	}
	if got := tee.Lines[0].VariantLabel; got != "Red / M" {
		t.Fatalf("expected color/size label, got %q", got)
	}

	mug, err := svc.AddItem(ctx, "sess-1", 20, "", catalog.StandardOption, 1)
	if err != nil {
		t.Fatalf("mug add: %v", err)
	}
	if got := mug.Lines[1].VariantLabel; got != catalog.StandardOption {
		t.Fatalf("expected Standard label for sentinel variant, got %q", got)
	}
}

func TestAddItemUnresolvedSelection(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, teeProduct(t))
	_, err := svc.AddItem(context.Background(), "sess-1", 10, "Red", "XL", 1)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if !svc.View(context.Background(), "sess-1").IsEmpty() {
		t.Fatalf("failed add must leave cart untouched")
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.AddItem(context.Background(), "sess-1", 404, "Red", "M", 1)
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRemoveAndClear(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, teeProduct(t))
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess-1", 10, "Red", "M", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess-1", 10, "Blue", "M", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	after := svc.RemoveItem(ctx, "sess-1", 5)
	if len(after.Lines) != 1 || after.Lines[0].VariantID != 7 {
		t.Fatalf("unexpected cart after remove: %+v", after.Lines)
	}

	svc.Clear(ctx, "sess-1")
	if !svc.View(ctx, "sess-1").IsEmpty() {
		t.Fatalf("expected empty cart after clear")
	}
}
