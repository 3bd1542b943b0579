package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/electromart/electromart-backend/api/controllers"
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
	"github.com/electromart/electromart-backend/pkg/metrics"
)

// StorePinger is the readiness surface of the document store client.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Deps carries everything the router mounts.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.HTTPMetrics
	Verifier fireauth.TokenVerifier
	Roles    middleware.RoleResolver
	Store    StorePinger

	Users    usersvc.Service
	Shops    shopsvc.Service
	Products productsvc.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Reviews  reviewsvc.Service

	// InvalidateRole drops a cached role after an admin reassignment. Nil
	// when the role cache is disabled.
	InvalidateRole func(r *http.Request, uid string)
}

// NewRouter wires middleware and routes. Role gates always sit behind Auth so
// every protected handler sees a verified uid.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.CORS(d.Config.CORS.AllowedOrigins),
	)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Store, d.Logger))
	})

	authed := middleware.Auth(d.Verifier, d.Logger)
	customer := middleware.RequireRole(enums.RoleCustomer, d.Roles, d.Logger)
	vendor := middleware.RequireRole(enums.RoleVendor, d.Roles, d.Logger)
	admin := middleware.RequireRole(enums.RoleAdmin, d.Roles, d.Logger)

	r.Route("/api", func(r chi.Router) {
		// Public storefront reads.
		r.Get("/shops/{vendorId}", controllers.ShopGet(d.Shops, d.Logger))
		r.Get("/products/shop/{shopId}", controllers.ProductListByShop(d.Products, d.Logger))
		r.Get("/reviews/product/{targetId}", controllers.ReviewList(d.Reviews, enums.ReviewTargetProducts, d.Logger))
		r.Get("/reviews/shop/{targetId}", controllers.ReviewList(d.Reviews, enums.ReviewTargetShops, d.Logger))

		r.Group(func(r chi.Router) {
			r.Use(authed)

			r.Post("/users/register", controllers.UserRegister(d.Users, d.Logger))
			r.Get("/users/{uid}", controllers.UserGet(d.Users, d.Logger))

			r.Group(func(r chi.Router) {
				r.Use(customer)
				r.Get("/cart", controllers.CartGet(d.Cart, d.Logger))
				r.Post("/cart", controllers.CartUpsert(d.Cart, d.Logger))
				r.Delete("/cart/{productId}", controllers.CartRemove(d.Cart, d.Logger))
				r.Post("/orders/checkout", controllers.OrderCheckout(d.Checkout, d.Logger))
				r.Get("/orders", controllers.OrderList(d.Checkout, d.Logger))
				r.Get("/orders/{orderId}", controllers.OrderGet(d.Checkout, d.Logger))
				r.Post("/reviews/product/{targetId}", controllers.ReviewSubmit(d.Reviews, enums.ReviewTargetProducts, d.Logger))
				r.Post("/reviews/shop/{targetId}", controllers.ReviewSubmit(d.Reviews, enums.ReviewTargetShops, d.Logger))
			})

			r.Group(func(r chi.Router) {
				r.Use(vendor)
				r.Post("/shops", controllers.ShopUpsert(d.Shops, d.Logger))
				r.Get("/shops/me/profile", controllers.ShopMine(d.Shops, d.Logger))
				r.Post("/products", controllers.ProductCreate(d.Products, d.Logger))
				r.Put("/products/{productId}", controllers.ProductUpdate(d.Products, d.Logger))
			})

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/users", controllers.UserList(d.Users, d.Logger))
				r.Post("/users/set-role", controllers.UserSetRole(d.Users, d.InvalidateRole, d.Logger))
				r.Post("/shops/{vendorId}/approve", controllers.ShopApprove(d.Shops, d.Logger))
			})
		})
	})

	return r
}
