package orders

import (
	"context"
	"testing"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/printful"
)

type stubProvider struct {
	request      *printful.OrderRequest
	confirmation *printful.OrderConfirmation
	err          error
}

func (s *stubProvider) CreateOrder(ctx context.Context, order printful.OrderRequest) (*printful.OrderConfirmation, error) {
	s.request = &order
	if s.err != nil {
		return nil, s.err
	}
	return s.confirmation, nil
}

type stubCarts struct {
	cart    cart.Cart
	cleared bool
}

func (s *stubCarts) View(ctx context.Context, sessionID string) cart.Cart { return s.cart }
func (s *stubCarts) Clear(ctx context.Context, sessionID string)          { s.cleared = true }

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{confirmation: &printful.OrderConfirmation{ID: 9001, Status: "draft"}}
	carts := &stubCarts{cart: filledCart(t)}
	svc, err := NewService(provider, carts, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	confirmed, err := svc.Submit(context.Background(), "sess-1", fullRecipient())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if confirmed.OrderID != 9001 || confirmed.Status != "draft" {
		t.Fatalf("unexpected confirmation: %+v", confirmed)
	}
	if !carts.cleared {
		t.Fatalf("expected cart cleared after accepted order")
	}
	if provider.request == nil || len(provider.request.Items) != 2 {
		t.Fatalf("unexpected provider payload: %+v", provider.request)
	}
}

func TestSubmitKeepsCartOnProviderFailure(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{err: errors.New(errors.CodeDependency, "order rejected")}
	carts := &stubCarts{cart: filledCart(t)}
	svc, err := NewService(provider, carts, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Submit(context.Background(), "sess-1", fullRecipient())
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if carts.cleared {
		t.Fatalf("cart must survive a failed submission")
	}
}

func TestSubmitEmptyCartNeverReachesProvider(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{confirmation: &printful.OrderConfirmation{ID: 1, Status: "draft"}}
	carts := &stubCarts{}
	svc, err := NewService(provider, carts, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Submit(context.Background(), "sess-1", fullRecipient())
	typed := errors.As(err)
	if typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if provider.request != nil {
		t.Fatalf("provider must not be called for an empty cart")
	}
}

func TestNewServiceRequiresDeps(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, &stubCarts{}, nil); err == nil {
		t.Fatalf("expected error for nil provider")
	}
	if _, err := NewService(&stubProvider{}, nil, nil); err == nil {
		t.Fatalf("expected error for nil cart service")
	}
}
