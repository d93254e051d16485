package controllers

import (
	"net/http"

	"github.com/paperthread/storefront-backend/api/responses"
	"github.com/paperthread/storefront-backend/api/validators"
	"github.com/paperthread/storefront-backend/internal/catalog"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

// ListProducts returns the storefront listing.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		listing, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listing)
	}
}

type productDetailResponse struct {
	catalog.Product
	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`
}

// GetProduct returns one product with its selection axes. The optional color
// query narrows the size list to sizes available in that color.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := validators.ParseIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		color := validators.QueryString(r, "color")
		responses.WriteSuccess(w, productDetailResponse{
			Product: *product,
			Colors:  catalog.Colors(product.Variants),
			Sizes:   catalog.Sizes(product.Variants, color),
		})
	}
}

type resolvedVariantResponse struct {
	catalog.Variant
	DisplayImageURL string `json:"display_image_url"`
}

// ResolveVariant maps a (color, size) selection to the concrete variant. An
// unresolved selection is a validation error so the storefront can keep the
// add-to-cart button disabled.
func ResolveVariant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := validators.ParseIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		color := validators.QueryString(r, "color")
		size := validators.QueryString(r, "size")

		resolved, err := catalog.Resolve(product.Variants, color, size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "no variant matches the selection").
				WithDetails(map[string]any{"color": color, "size": size}))
			return
		}

		responses.WriteSuccess(w, resolvedVariantResponse{
			Variant:         resolved,
			DisplayImageURL: catalog.DisplayImage(&resolved, product.ThumbnailURL),
		})
	}
}
