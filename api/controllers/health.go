package controllers

import (
	"context"
	"net/http"

	"github.com/paperthread/storefront-backend/api/responses"
	"github.com/paperthread/storefront-backend/pkg/config"
	pkgerrors "github.com/paperthread/storefront-backend/pkg/errors"
	"github.com/paperthread/storefront-backend/pkg/logger"
)

// Pinger is the readiness probe a dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Paperthread-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only while the cache dependency answers. The
// provider is deliberately not probed; readiness must not burn its rate limit.
func HealthReady(cfg *config.Config, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Paperthread-Env", cfg.App.Env)
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cache unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
