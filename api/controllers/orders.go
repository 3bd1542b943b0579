package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	checkoutsvc "github.com/electromart/electromart-backend/internal/checkout"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// OrderCheckout converts the caller's cart into an order and hands back the
// vendor contact link.
func OrderCheckout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		result, err := svc.Checkout(r.Context(), middleware.UIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// OrderGet returns one of the caller's orders. Orders belonging to other
// customers come back as 404.
func OrderGet(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		order, err := svc.GetOrder(r.Context(), middleware.UIDFromContext(r.Context()), chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// OrderList returns the caller's orders, newest first.
func OrderList(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		orders, err := svc.ListOrders(r.Context(), middleware.UIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orders)
	}
}
