package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/paperthread/storefront-backend/api/middleware"
	"github.com/paperthread/storefront-backend/api/responses"
	"github.com/paperthread/storefront-backend/api/validators"
	"github.com/paperthread/storefront-backend/internal/cart"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

type cartResponse struct {
	Lines      []cart.Line     `json:"lines"`
	ItemCount  int             `json:"item_count"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

func toCartResponse(c cart.Cart) cartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{
		Lines:      lines,
		ItemCount:  c.ItemCount(),
		GrandTotal: c.GrandTotal(),
	}
}

// GetCart returns the session cart.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, toCartResponse(svc.View(r.Context(), sessionID)))
	}
}

type addItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Color     string `json:"color"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// AddCartItem resolves the selection and adds it to the session cart.
func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity == 0 {
			payload.Quantity = 1
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		updated, err := svc.AddItem(r.Context(), sessionID, payload.ProductID, payload.Color, payload.Size, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toCartResponse(updated))
	}
}

// RemoveCartItem drops one variant line; removing an absent line succeeds.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		variantID, err := validators.ParseIDParam(r, "variantID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, toCartResponse(svc.RemoveItem(r.Context(), sessionID, variantID)))
	}
}

// ClearCart empties the session cart.
func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		svc.Clear(r.Context(), sessionID)
		responses.WriteSuccess(w, toCartResponse(cart.Cart{}))
	}
}
