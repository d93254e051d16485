package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paperthread/storefront-backend/api/controllers"
	"github.com/paperthread/storefront-backend/api/middleware"
	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/internal/orders"
	"github.com/paperthread/storefront-backend/pkg/config"
	"github.com/paperthread/storefront-backend/pkg/logger"
	"github.com/paperthread/storefront-backend/pkg/metrics"
)

// RouterParams carry everything the HTTP surface needs.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	Cache          controllers.Pinger
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler prometheus.Gatherer
	Catalog        catalog.Service
	Cart           cart.Service
	Orders         orders.Service
}

// NewRouter assembles the full route tree with its middleware chain.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(p.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Cache, p.Logger))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsHandler, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(p.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(p.Catalog, p.Logger))
			r.Get("/{productID}", controllers.GetProduct(p.Catalog, p.Logger))
			r.Get("/{productID}/variant", controllers.ResolveVariant(p.Catalog, p.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(p.Cart, p.Logger))
			r.Delete("/", controllers.ClearCart(p.Cart, p.Logger))
			r.Post("/items", controllers.AddCartItem(p.Cart, p.Logger))
			r.Delete("/items/{variantID}", controllers.RemoveCartItem(p.Cart, p.Logger))
		})

		r.Post("/orders", controllers.SubmitOrder(p.Orders, p.Logger))
	})

	return r
}
