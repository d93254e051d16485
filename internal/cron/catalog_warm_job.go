package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/paperthread/storefront-backend/internal/catalog"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

// CatalogWarmJob walks the product listing and fetches every detail document,
// refreshing the read-through cache before shoppers hit a cold entry.
type CatalogWarmJob struct {
	catalog catalog.Service
	logg    *logger.Logger
}

func NewCatalogWarmJob(catalogService catalog.Service, logg *logger.Logger) (*CatalogWarmJob, error) {
	if catalogService == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &CatalogWarmJob{catalog: catalogService, logg: logg}, nil
}

func (j *CatalogWarmJob) Name() string { return "catalog_warm" }

// Run keeps going past individual product failures; one bad product must not
// leave the rest of the catalog cold. Per-product errors are combined into the
// final result.
func (j *CatalogWarmJob) Run(ctx context.Context) error {
	listing, err := j.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	var combined error
	warmed := 0
	for _, summary := range listing {
		if ctx.Err() != nil {
			return multierr.Append(combined, ctx.Err())
		}
		if _, err := j.catalog.GetProduct(ctx, summary.ID); err != nil {
			combined = multierr.Append(combined, fmt.Errorf("product %d: %w", summary.ID, err))
			continue
		}
		warmed++
	}

	j.logg.Info(j.logg.WithField(ctx, "warmed", warmed), "catalog warm pass complete")
	return combined
}
