package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/responses"
	"github.com/electromart/electromart-backend/api/validators"
	usersvc "github.com/electromart/electromart-backend/internal/users"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
)

// UserRegister completes signup after identity-provider auth: the uid comes
// from the verified token, never from the body.
func UserRegister(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		uid := middleware.UIDFromContext(r.Context())
		if uid == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), uid, usersvc.RegisterInput{
			Name:  payload.Name,
			Email: payload.Email,
			Role:  payload.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

type registerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=vendor customer"`
}

// UserSetRole lets an admin reassign any user's role.
func UserSetRole(svc usersvc.Service, invalidate func(r *http.Request, uid string), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var payload setRoleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := svc.SetRole(r.Context(), payload.UID, payload.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if invalidate != nil {
			invalidate(r, payload.UID)
		}

		responses.WriteSuccess(w, map[string]string{"uid": payload.UID, "role": role.String()})
	}
}

type setRoleRequest struct {
	UID  string `json:"uid" validate:"required"`
	Role string `json:"role" validate:"required,oneof=admin vendor customer"`
}

// UserList returns every registered account. Admin only.
func UserList(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		users, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, users)
	}
}

// UserGet returns a single profile by uid. Any authenticated caller; an
// unknown uid is a 404.
func UserGet(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		uid := strings.TrimSpace(chi.URLParam(r, "uid"))
		if uid == "" {
			uid = middleware.UIDFromContext(r.Context())
		}

		user, err := svc.GetByID(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
