package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/paperthread/storefront-backend/pkg/logger"
	"github.com/paperthread/storefront-backend/pkg/printful"
	"github.com/paperthread/storefront-backend/pkg/redis"
)

// ProductSummary is one storefront listing row.
type ProductSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	VariantCount int    `json:"variant_count"`
}

// Product is a full product with its normalized variants. Immutable once
// built; a fresh value is produced per fetch.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Variants     []Variant `json:"variants"`
}

type providerClient interface {
	ListProducts(ctx context.Context) ([]printful.SyncProductSummary, error)
	GetProduct(ctx context.Context, productID int64) (*printful.ProductDetail, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CatalogKey(parts ...string) string
}

// Service exposes the catalog read model backed by the provider with a
// read-through cache.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductSummary, error)
	GetProduct(ctx context.Context, productID int64) (*Product, error)
}

type service struct {
	provider providerClient
	cache    cacheStore
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds the catalog service. The cache may be nil; every read then
// goes straight to the provider.
func NewService(provider providerClient, cache cacheStore, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider client required")
	}
	return &service{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logg:     logg,
	}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	var cached []ProductSummary
	key := s.cacheKey("products")
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	listing, err := s.provider.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProductSummary, 0, len(listing))
	for _, row := range listing {
		summaries = append(summaries, ProductSummary{
			ID:           row.ID,
			Name:         row.Name,
			ThumbnailURL: row.ThumbnailURL,
			VariantCount: row.Variants,
		})
	}

	s.writeCache(ctx, key, summaries)
	return summaries, nil
}

func (s *service) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	var cached Product
	key := s.cacheKey("product", strconv.FormatInt(productID, 10))
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	detail, err := s.provider.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product := &Product{
		ID:           detail.SyncProduct.ID,
		Name:         detail.SyncProduct.Name,
		ThumbnailURL: detail.SyncProduct.ThumbnailURL,
		Variants:     ParseVariants(detail.SyncVariants),
	}

	s.writeCache(ctx, key, product)
	return product, nil
}

func (s *service) cacheKey(parts ...string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.CatalogKey(parts...)
}

// readCache reports whether dest was populated. Cache trouble is never fatal;
// the read falls through to the provider.
func (s *service) readCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil || key == "" {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "catalog cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "catalog cache entry corrupt")
		}
		return false
	}
	return true
}

func (s *service) writeCache(ctx context.Context, key string, value any) {
	if s.cache == nil || key == "" {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "catalog cache write failed")
	}
}
