package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/electromart/electromart-backend/api/middleware"
	cartsvc "github.com/electromart/electromart-backend/internal/cart"
	checkoutsvc "github.com/electromart/electromart-backend/internal/checkout"
	productsvc "github.com/electromart/electromart-backend/internal/products"
	reviewsvc "github.com/electromart/electromart-backend/internal/reviews"
	shopsvc "github.com/electromart/electromart-backend/internal/shops"
	usersvc "github.com/electromart/electromart-backend/internal/users"
	"github.com/electromart/electromart-backend/pkg/config"
	"github.com/electromart/electromart-backend/pkg/enums"
	"github.com/electromart/electromart-backend/pkg/fireauth"
	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/models"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubVerifier struct{}

func (stubVerifier) VerifyToken(ctx context.Context, token string) (*fireauth.Identity, error) {
	if token != "good-token" {
		return nil, fmt.Errorf("invalid token")
	}
	return &fireauth.Identity{UID: "uid-1"}, nil
}

type stubResolver struct {
	role enums.Role
}

func (s stubResolver) Resolve(ctx context.Context, uid string) (enums.Role, error) {
	return s.role, nil
}

type stubUserService struct{}

func (stubUserService) Register(ctx context.Context, uid string, input usersvc.RegisterInput) (*models.User, error) {
	return &models.User{UID: uid}, nil
}
func (stubUserService) SetRole(ctx context.Context, uid, role string) (enums.Role, error) {
	return enums.RoleVendor, nil
}
func (stubUserService) List(ctx context.Context) ([]models.User, error) { return nil, nil }
func (stubUserService) GetByID(ctx context.Context, uid string) (*models.User, error) {
	return &models.User{UID: uid}, nil
}
func (stubUserService) AdminEmails(ctx context.Context) ([]string, error) { return nil, nil }
func (stubUserService) Resolve(ctx context.Context, uid string) (enums.Role, error) {
	return enums.RoleCustomer, nil
}

type stubShopService struct{}

func (stubShopService) Upsert(ctx context.Context, vendorID string, input shopsvc.UpsertInput) (*models.Shop, error) {
	return &models.Shop{VendorID: vendorID}, nil
}
func (stubShopService) Get(ctx context.Context, vendorID string) (*models.Shop, error) {
	return &models.Shop{VendorID: vendorID}, nil
}
func (stubShopService) Approve(ctx context.Context, vendorID string) (*models.Shop, error) {
	return &models.Shop{VendorID: vendorID, Approved: true}, nil
}

type stubProductService struct{}

func (stubProductService) Create(ctx context.Context, vendorID string, input productsvc.CreateInput) (*models.Product, error) {
	return &models.Product{ID: "prod-1"}, nil
}
func (stubProductService) Update(ctx context.Context, vendorID, productID string, input productsvc.UpdateInput) (*models.Product, error) {
	return &models.Product{ID: productID}, nil
}
func (stubProductService) ListByShop(ctx context.Context, shopID string) ([]models.Product, error) {
	return []models.Product{}, nil
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	return &models.Cart{OwnerID: ownerID, Items: []models.CartItem{}}, nil
}
func (stubCartService) Upsert(ctx context.Context, ownerID string, item models.CartItem) (*models.Cart, error) {
	return &models.Cart{OwnerID: ownerID, Items: []models.CartItem{item}}, nil
}
func (stubCartService) Remove(ctx context.Context, ownerID, productID string) (*models.Cart, error) {
	return &models.Cart{OwnerID: ownerID, Items: []models.CartItem{}}, nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(ctx context.Context, userID string) (*checkoutsvc.Result, error) {
	return &checkoutsvc.Result{OrderID: "order-1"}, nil
}
func (stubCheckoutService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return &models.Order{ID: orderID, UserID: userID}, nil
}
func (stubCheckoutService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return []models.Order{}, nil
}

type stubReviewService struct{}

func (stubReviewService) Submit(ctx context.Context, target enums.ReviewTarget, targetID, reviewerID string, rating int, comment string) (*models.Review, error) {
	return &models.Review{ReviewerID: reviewerID, Rating: rating}, nil
}
func (stubReviewService) List(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error) {
	return []models.Review{}, nil
}

func newTestRouter(role enums.Role) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error"), Output: io.Discard})
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	return NewRouter(Deps{
		Config:   cfg,
		Logger:   logg,
		Verifier: stubVerifier{},
		Roles:    stubResolver{role: role},
		Store:    stubPinger{},
		Users:    stubUserService{},
		Shops:    stubShopService{},
		Products: stubProductService{},
		Cart:     stubCartService{},
		Checkout: stubCheckoutService{},
		Reviews:  stubReviewService{},
	})
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(enums.RoleCustomer)

	for _, path := range []string{
		"/health/live",
		"/health/ready",
		"/api/shops/vendor-1",
		"/api/products/shop/vendor-1",
		"/api/reviews/product/p1",
		"/api/reviews/shop/vendor-1",
	} {
		if rec := doRequest(t, router, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(enums.RoleCustomer)

	if rec := doRequest(t, router, http.MethodGet, "/api/cart", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/api/cart", "bad-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with rejected token, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/api/cart", "good-token"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
}

func TestRoleGates(t *testing.T) {
	t.Parallel()

	customerRouter := newTestRouter(enums.RoleCustomer)
	vendorRouter := newTestRouter(enums.RoleVendor)
	adminRouter := newTestRouter(enums.RoleAdmin)

	// Customers cannot reach vendor or admin surfaces.
	if rec := doRequest(t, customerRouter, http.MethodPost, "/api/products", "good-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("customer on vendor route: expected 403, got %d", rec.Code)
	}
	if rec := doRequest(t, customerRouter, http.MethodGet, "/api/users", "good-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("customer on admin route: expected 403, got %d", rec.Code)
	}

	// Vendors cannot reach customer surfaces.
	if rec := doRequest(t, vendorRouter, http.MethodGet, "/api/orders", "good-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("vendor on customer route: expected 403, got %d", rec.Code)
	}

	// Admin list is reachable with the admin role.
	if rec := doRequest(t, adminRouter, http.MethodGet, "/api/users", "good-token"); rec.Code != http.StatusOK {
		t.Fatalf("admin route: expected 200, got %d", rec.Code)
	}
}

func TestCheckoutRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(enums.RoleCustomer)

	if rec := doRequest(t, router, http.MethodPost, "/api/orders/checkout", "good-token"); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/api/orders/order-1", "good-token"); rec.Code != http.StatusOK {
		t.Fatalf("order lookup: expected 200, got %d", rec.Code)
	}
}

var (
	_ usersvc.Service         = stubUserService{}
	_ shopsvc.Service         = stubShopService{}
	_ productsvc.Service      = stubProductService{}
	_ cartsvc.Service         = stubCartService{}
	_ checkoutsvc.Service     = stubCheckoutService{}
	_ reviewsvc.Service       = stubReviewService{}
	_ middleware.RoleResolver = stubResolver{}
)
