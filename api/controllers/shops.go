package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/api/validators"
	shopsvc "github.com/electromart/electromart-backend/internal/shops"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// ShopUpsert creates or updates the caller's storefront. Saving always
// resets the shop to pending approval.
func ShopUpsert(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var payload shopUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shop, err := svc.Upsert(r.Context(), middleware.UIDFromContext(r.Context()), shopsvc.UpsertInput{
			Name:           payload.Name,
			Category:       payload.Category,
			Description:    payload.Description,
			WhatsappNumber: payload.WhatsappNumber,
			Location:       payload.Location,
			LogoURL:        payload.LogoURL,
			CoverPhotoURL:  payload.CoverPhotoURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shop)
	}
}

type shopUpsertRequest struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Description    string `json:"description"`
	WhatsappNumber string `json:"whatsappNumber" validate:"required"`
	Location       string `json:"location"`
	LogoURL        string `json:"logoUrl"`
	CoverPhotoURL  string `json:"coverPhotoUrl"`
}

// ShopGet returns a shop by its vendor id. Public.
func ShopGet(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		shop, err := svc.Get(r.Context(), strings.TrimSpace(chi.URLParam(r, "vendorId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shop)
	}
}

// ShopMine returns the caller's own storefront.
func ShopMine(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		shop, err := svc.Get(r.Context(), middleware.UIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shop)
	}
}

// ShopApprove flips a shop live. Admin only.
func ShopApprove(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		vendorID := strings.TrimSpace(chi.URLParam(r, "vendorId"))
		if vendorID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required"))
			return
		}

		shop, err := svc.Approve(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shop)
	}
}
