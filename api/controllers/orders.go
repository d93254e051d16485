package controllers

import (
	"net/http"

	"github.com/paperthread/storefront-backend/api/middleware"
	"github.com/paperthread/storefront-backend/api/responses"
	"github.com/paperthread/storefront-backend/api/validators"
	"github.com/paperthread/storefront-backend/internal/orders"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

type submitOrderRequest struct {
	Recipient orders.Recipient `json:"recipient"`
}

// SubmitOrder builds the order from the session cart and forwards it to the
// fulfillment provider. Recipient completeness is checked by the order
// builder, which names the first missing field in form order.
func SubmitOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload submitOrderRequest
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		confirmation, err := svc.Submit(r.Context(), sessionID, payload.Recipient)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
