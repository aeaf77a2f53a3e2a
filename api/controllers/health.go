package controllers

import (
	"context"
	"net/http"

	"github.com/davidcastanon/shopmart-backend/api/responses"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/davidcastanon/shopmart-backend/pkg/logger"
)

// Pinger is the readiness surface of a backing dependency. Both the database
// and redis clients satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopMart-Env", cfg.App.Env)
		responses.WriteData(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings each named dependency and fails on the first one down.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopMart-Env", cfg.App.Env)

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}

		responses.WriteData(w, map[string]string{"status": "ready"})
	}
}
