package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/api/validators"
	productsvc "github.com/electromart/electromart-backend/internal/products"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// ProductCreate lists a product under the caller's shop.
func ProductCreate(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload productCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), middleware.UIDFromContext(r.Context()), productsvc.CreateInput{
			Title:        payload.Title,
			Description:  payload.Description,
			Price:        payload.Price,
			Stock:        payload.Stock,
			Images:       payload.Images,
			Category:     payload.Category,
			SubCategory:  payload.SubCategory,
			Manufacturer: payload.Manufacturer,
			Features:     payload.Features,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type productCreateRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"required,min=0"`
	Stock        int      `json:"stock" validate:"min=0"`
	Images       []string `json:"images"`
	Category     string   `json:"category" validate:"required"`
	SubCategory  string   `json:"subCategory"`
	Manufacturer string   `json:"manufacturer"`
	Features     string   `json:"features"`
}

// ProductUpdate mutates one of the caller's listings.
func ProductUpdate(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload productUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), middleware.UIDFromContext(r.Context()), productID, productsvc.UpdateInput{
			Title:        payload.Title,
			Description:  payload.Description,
			Price:        payload.Price,
			Stock:        payload.Stock,
			Images:       payload.Images,
			Category:     payload.Category,
			SubCategory:  payload.SubCategory,
			Manufacturer: payload.Manufacturer,
			Features:     payload.Features,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type productUpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Stock        *int      `json:"stock"`
	Images       *[]string `json:"images"`
	Category     *string   `json:"category"`
	SubCategory  *string   `json:"subCategory"`
	Manufacturer *string   `json:"manufacturer"`
	Features     *string   `json:"features"`
}

// ProductListByShop returns a shop's catalogue. Public.
func ProductListByShop(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		products, err := svc.ListByShop(r.Context(), strings.TrimSpace(chi.URLParam(r, "shopId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}
