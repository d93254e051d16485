package cart

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

// Service is the session-facing cart API. Every operation returns the cart as
// it stands after the operation, so handlers never need a second read.
type Service interface {
	View(ctx context.Context, sessionID string) Cart
	AddItem(ctx context.Context, sessionID string, productID int64, color, size string, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, sessionID string, variantID int64) Cart
	Clear(ctx context.Context, sessionID string)
}

type service struct {
	catalog catalog.Service
	store   *Store
	logg    *logger.Logger
}

func NewService(catalogService catalog.Service, store *Store, logg *logger.Logger) (Service, error) {
	if catalogService == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{catalog: catalogService, store: store, logg: logg}, nil
}

func (s *service) View(ctx context.Context, sessionID string) Cart {
	return s.store.Get(sessionID)
}

// AddItem resolves the selection against the live catalog before touching the
// cart, so a cart can never hold a variant the product does not offer.
func (s *service) AddItem(ctx context.Context, sessionID string, productID int64, color, size string, quantity int) (Cart, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	resolved, err := catalog.Resolve(product.Variants, color, size)
	if err != nil {
		if stdErrors.Is(err, catalog.ErrUnresolvedSelection) {
			return Cart{}, errors.New(errors.CodeValidation, "no variant matches the selection").
				WithDetails(map[string]any{"color": color, "size": size})
		}
		return Cart{}, err
	}

	line := Line{
		VariantID:    resolved.ID,
		ProductName:  product.Name,
		VariantLabel: variantLabel(product.Variants, resolved),
		ThumbnailURL: catalog.DisplayImage(&resolved, product.ThumbnailURL),
		UnitPrice:    resolved.Price,
		Quantity:     quantity,
	}

	next := s.store.Update(sessionID, func(c Cart) Cart { return c.Add(line) })
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "variant_id", resolved.ID), "cart item added")
	}
	return next, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, variantID int64) Cart {
	return s.store.Update(sessionID, func(c Cart) Cart { return c.Remove(variantID) })
}

func (s *service) Clear(ctx context.Context, sessionID string) {
	s.store.Clear(sessionID)
}

// variantLabel renders the selection the way the storefront shows it: size
// alone when the product has no color axis, color and size otherwise. A fully
// sentinel variant keeps the Standard label so the line is never blank.
func variantLabel(variants []catalog.Variant, resolved catalog.Variant) string {
	if len(catalog.Colors(variants)) == 0 {
		return resolved.Size
	}
	return resolved.Color + " / " + resolved.Size
}
