package orders

import (
	"context"
	"fmt"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/pkg/logger"
	"github.com/paperthread/storefront-backend/pkg/printful"
)

// Confirmation is the order receipt returned to the storefront.
type Confirmation struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type orderClient interface {
	CreateOrder(ctx context.Context, order printful.OrderRequest) (*printful.OrderConfirmation, error)
}

type cartService interface {
	View(ctx context.Context, sessionID string) cart.Cart
	Clear(ctx context.Context, sessionID string)
}

// Service submits orders built from session carts.
type Service interface {
	Submit(ctx context.Context, sessionID string, recipient Recipient) (*Confirmation, error)
}

type service struct {
	provider orderClient
	carts    cartService
	logg     *logger.Logger
}

func NewService(provider orderClient, carts cartService, logg *logger.Logger) (Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider client required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	return &service{provider: provider, carts: carts, logg: logg}, nil
}

// Submit builds the payload from the current cart and forwards it to the
// provider. The cart is cleared only after the provider accepts the order; a
// failed submission leaves it intact for a retry.
func (s *service) Submit(ctx context.Context, sessionID string, recipient Recipient) (*Confirmation, error) {
	current := s.carts.View(ctx, sessionID)

	payload, err := BuildPayload(recipient, current)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.provider.CreateOrder(ctx, *payload)
	if err != nil {
		return nil, err
	}

	s.carts.Clear(ctx, sessionID)
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "order_id", confirmed.ID), "order submitted")
	}

	return &Confirmation{OrderID: confirmed.ID, Status: confirmed.Status}, nil
}
