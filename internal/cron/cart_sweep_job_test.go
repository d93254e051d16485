package cron

import (
	"context"
	"testing"
	"time"

	"github.com/paperthread/storefront-backend/internal/cart"
	"github.com/shopspring/decimal"
)

func TestCartSweepEvictsExpiredSessions(t *testing.T) {
	store := cart.NewStore(time.Nanosecond)
	store.Update("stale", func(c cart.Cart) cart.Cart {
		return c.Add(cart.Line{VariantID: 1, UnitPrice: decimal.Zero, Quantity: 1})
	})
	time.Sleep(time.Millisecond)

	job, err := NewCartSweepJob(store, quietLogger())
	if err != nil {
		t.Fatalf("NewCartSweepJob: %v", err)
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !store.Get("stale").IsEmpty() {
		t.Fatalf("expired session survived the sweep")
	}
}

func TestCartSweepJobValidation(t *testing.T) {
	if _, err := NewCartSweepJob(nil, quietLogger()); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := NewCartSweepJob(cart.NewStore(time.Hour), nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}
