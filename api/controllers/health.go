package controllers

import (
	"context"
	"net/http"

	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/pkg/config"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

type storePinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ElectroMart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the document store answers.
func HealthReady(cfg *config.Config, store storePinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ElectroMart-Env", cfg.App.Env)
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "document store unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
