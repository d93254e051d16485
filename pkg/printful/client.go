package printful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/paperthread/storefront-backend/pkg/config"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/metrics"
)

const maxResponseBytes = 4 << 20

// Client talks to the Printful store API with bearer-token auth. It is the
// only place the credential exists; callers never see it.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	metrics *metrics.ProviderMetrics
}

// New builds a provider client from configuration.
func New(cfg config.PrintfulConfig, providerMetrics *metrics.ProviderMetrics) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("printful api key is required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("printful base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		metrics: providerMetrics,
	}, nil
}

// ListProducts fetches the sync product listing for the store.
func (c *Client) ListProducts(ctx context.Context) ([]SyncProductSummary, error) {
	var listing []SyncProductSummary
	if err := c.call(ctx, "list_products", http.MethodGet, "/store/products", nil, &listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// GetProduct fetches one sync product with all of its variants.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*ProductDetail, error) {
	var detail ProductDetail
	path := "/store/products/" + strconv.FormatInt(productID, 10)
	if err := c.call(ctx, "get_product", http.MethodGet, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreateOrder submits a draft order to the provider.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	if err := c.call(ctx, "create_order", http.MethodPost, "/orders", order, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (c *Client) call(ctx context.Context, operation, method, path string, body any, result any) error {
	start := time.Now()
	err := c.do(ctx, method, path, body, result)
	c.metrics.ObserveCall(operation, err, time.Since(start))
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding provider request")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building provider request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fulfillment provider unreachable")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading provider response")
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(payload, &env); unmarshalErr != nil && resp.StatusCode < 300 {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, unmarshalErr, "decoding provider response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if resp.StatusCode >= 300 {
		return pkgerrors.New(pkgerrors.CodeDependency, providerMessage(env, resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	if result == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding provider result")
	}
	return nil
}

// providerMessage surfaces the provider's own wording unchanged; the UI shows
// it as-is.
func providerMessage(env envelope, status int) string {
	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	var asString string
	if len(env.Result) > 0 && json.Unmarshal(env.Result, &asString) == nil && asString != "" {
		return asString
	}
	return fmt.Sprintf("provider request failed with status %d", status)
}
