package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/api/validators"
	reviewsvc "github.com/electromart/electromart-backend/internal/reviews"
	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// ReviewSubmit records or replaces the caller's review of the target and
// refreshes its rating aggregates.
func ReviewSubmit(svc reviewsvc.Service, target enums.ReviewTarget, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		targetID := strings.TrimSpace(chi.URLParam(r, "targetId"))
		if targetID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "target id is required"))
			return
		}

		var payload reviewSubmitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Submit(r.Context(), target, targetID, middleware.UIDFromContext(r.Context()), payload.Rating, payload.Comment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

type reviewSubmitRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewList returns the target's reviews, newest first. Public.
func ReviewList(svc reviewsvc.Service, target enums.ReviewTarget, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		reviews, err := svc.List(r.Context(), target, strings.TrimSpace(chi.URLParam(r, "targetId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, reviews)
	}
}
