package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/api/validators"
	cartsvc "github.com/electromart/electromart-backend/internal/cart"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/models"
)

// CartGet returns the caller's cart, empty when nothing was ever added.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Get(r.Context(), middleware.UIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartUpsert adds an item or replaces its quantity.
func CartUpsert(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Upsert(r.Context(), middleware.UIDFromContext(r.Context()), models.CartItem{
			ProductID: payload.ProductID,
			Title:     payload.Title,
			Quantity:  payload.Quantity,
			Price:     payload.Price,
			Image:     payload.Image,
			ShopID:    payload.ShopID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

type cartUpsertRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"required,min=0"`
	Image     string  `json:"image"`
	ShopID    string  `json:"shopId" validate:"required"`
}

// CartRemove drops a product from the caller's cart.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		cart, err := svc.Remove(r.Context(), middleware.UIDFromContext(r.Context()), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}
