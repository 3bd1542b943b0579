package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/middleware"
	reviewsvc "github.com/electromart/electromart-backend/internal/reviews"
	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type stubReviewService struct {
	gotTarget   enums.ReviewTarget
	gotTargetID string
	gotRating   int
	submitErr   error
}

func (s *stubReviewService) Submit(ctx context.Context, target enums.ReviewTarget, targetID, reviewerID string, rating int, comment string) (*models.Review, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.gotTarget = target
	s.gotTargetID = targetID
	s.gotRating = rating
	return &models.Review{ReviewerID: reviewerID, Rating: rating, Comment: comment}, nil
}

func (s *stubReviewService) List(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error) {
	return []models.Review{}, nil
}

func reviewRequest(body string) (*http.Request, *httptest.ResponseRecorder) {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("targetId", "p1")
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, routeCtx)
	ctx = middleware.WithUID(ctx, "user-a")

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/product/p1", strings.NewReader(body)).WithContext(ctx)
	return req, httptest.NewRecorder()
}

func TestReviewSubmit(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubReviewService{}
		req, rec := reviewRequest(`{"rating":4,"comment":"solid"}`)
		ReviewSubmit(stub, enums.ReviewTargetProducts, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.gotTarget != enums.ReviewTargetProducts || stub.gotTargetID != "p1" || stub.gotRating != 4 {
			t.Fatalf("unexpected submit args: %+v", stub)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		stub := &stubReviewService{}
		req, rec := reviewRequest(`{"rating":6}`)
		ReviewSubmit(stub, enums.ReviewTargetProducts, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("service validation surfaces as 400", func(t *testing.T) {
		stub := &stubReviewService{submitErr: pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")}
		req, rec := reviewRequest(`{"rating":3}`)
		ReviewSubmit(stub, enums.ReviewTargetProducts, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

var _ reviewsvc.Service = (*stubReviewService)(nil)
