package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/internal/orders"
	"github.com/paperthread/storefront-backend/pkg/config"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
	"github.com/paperthread/storefront-backend/pkg/metrics"
	"github.com/paperthread/storefront-backend/pkg/printful"
	"github.com/shopspring/decimal"
)

type fakeProvider struct{}

func (fakeProvider) ListProducts(ctx context.Context) ([]printful.SyncProductSummary, error) {
	return []printful.SyncProductSummary{{ID: 10, Name: "Logo Tee", Variants: 2}}, nil
}

func (fakeProvider) GetProduct(ctx context.Context, productID int64) (*printful.ProductDetail, error) {
	if productID != 10 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return &printful.ProductDetail{
		SyncProduct: printful.SyncProduct{ID: 10, Name: "Logo Tee", ThumbnailURL: "https://img.example/thumb.png"},
		SyncVariants: []printful.SyncVariant{
			{ID: 5, Name: "Logo Tee - Red - M", RetailPrice: "24.50", Currency: "USD"},
			{ID: 7, Name: "Logo Tee - Blue - M", RetailPrice: "26.00", Currency: "USD"},
		},
	}, nil
}

func (fakeProvider) CreateOrder(ctx context.Context, order printful.OrderRequest) (*printful.OrderConfirmation, error) {
	return &printful.OrderConfirmation{ID: 9001, Status: "draft"}, nil
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})

	catalogSvc, err := catalog.NewService(fakeProvider{}, nil, 0, logg)
	if err != nil {
		t.Fatalf("catalog.NewService: %v", err)
	}
	store := cart.NewStore(time.Hour)
	cartSvc, err := cart.NewService(catalogSvc, store, logg)
	if err != nil {
		t.Fatalf("cart.NewService: %v", err)
	}
	orderSvc, err := orders.NewService(fakeProvider{}, cartSvc, logg)
	if err != nil {
		t.Fatalf("orders.NewService: %v", err)
	}

	registry := prometheus.NewRegistry()
	return NewRouter(RouterParams{
		Config:         cfg,
		Logger:         logg,
		Cache:          okPinger{},
		HTTPMetrics:    metrics.NewHTTPMetrics(registry),
		MetricsHandler: registry,
		Catalog:        catalogSvc,
		Cart:           cartSvc,
		Orders:         orderSvc,
	})
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	// A prior request guarantees at least one observation to expose.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestShopFlowEndToEnd(t *testing.T) {
	router := testRouter(t)

	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if listRec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listRec.Code)
	}
	session := listRec.Header().Get("X-Session-Id")
	if session == "" {
		t.Fatalf("expected session header on first contact")
	}

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		jsonBody(`{"product_id":10,"color":"Red","size":"M","quantity":2}`))
	addReq.Header.Set("X-Session-Id", session)
	addRec := httptest.NewRecorder()
	router.ServeHTTP(addRec, addReq)
	if addRec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", addRec.Code, addRec.Body.String())
	}

	var cartView struct {
		Data struct {
			ItemCount  int             `json:"item_count"`
			GrandTotal decimal.Decimal `json:"grand_total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(addRec.Body).Decode(&cartView); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cartView.Data.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", cartView.Data.ItemCount)
	}
	if !cartView.Data.GrandTotal.Equal(decimal.RequireFromString("49.00")) {
		t.Fatalf("expected grand total 49.00, got %s", cartView.Data.GrandTotal)
	}

	orderReq := httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		jsonBody(`{"recipient":{"name":"Ada Lovelace","address1":"12 Analytical Way","city":"London","state_code":"LND","country_code":"GB","zip":"EC1A 1BB"}}`))
	orderReq.Header.Set("X-Session-Id", session)
	orderRec := httptest.NewRecorder()
	router.ServeHTTP(orderRec, orderReq)
	if orderRec.Code != http.StatusCreated {
		t.Fatalf("order: expected 201, got %d: %s", orderRec.Code, orderRec.Body.String())
	}

	viewReq := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	viewReq.Header.Set("X-Session-Id", session)
	viewRec := httptest.NewRecorder()
	router.ServeHTTP(viewRec, viewReq)
	var after struct {
		Data struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(viewRec.Body).Decode(&after); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if after.Data.ItemCount != 0 {
		t.Fatalf("cart must be empty after an accepted order, got %d", after.Data.ItemCount)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
