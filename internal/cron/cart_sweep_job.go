package cron

import (
	"context"
	"fmt"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

// CartSweepJob evicts session carts that outlived their TTL.
type CartSweepJob struct {
	store *cart.Store
	logg  *logger.Logger
}

func NewCartSweepJob(store *cart.Store, logg *logger.Logger) (*CartSweepJob, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &CartSweepJob{store: store, logg: logg}, nil
}

func (j *CartSweepJob) Name() string { return "cart_sweep" }

func (j *CartSweepJob) Run(ctx context.Context) error {
	removed := j.store.Sweep()
	if removed > 0 {
		j.logg.Info(j.logg.WithField(ctx, "removed", removed), "expired session carts evicted")
	}
	return nil
}
