package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/electromart/electromart-backend/api/middleware"
	"github.com/electromart/electromart-backend/api/routes"
	cartsvc "github.com/electromart/electromart-backend/internal/cart"
	checkoutsvc "github.com/electromart/electromart-backend/internal/checkout"
	"github.com/electromart/electromart-backend/internal/mailer"
	ordersrepo "github.com/electromart/electromart-backend/internal/orders"
	productsvc "github.com/electromart/electromart-backend/internal/products"
	reviewsvc "github.com/electromart/electromart-backend/internal/reviews"
	shopsvc "github.com/electromart/electromart-backend/internal/shops"
	usersvc "github.com/electromart/electromart-backend/internal/users"
	"github.com/electromart/electromart-backend/pkg/config"
	"github.com/electromart/electromart-backend/pkg/fireauth"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/metrics"
	"github.com/electromart/electromart-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	app, err := firestore.NewApp(ctx, cfg.Firebase)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap firebase app", err)
		os.Exit(1)
	}

	store, err := firestore.FromApp(ctx, app, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap firestore", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(ctx, "error closing firestore", err)
		}
	}()

	verifier, err := fireauth.NewVerifier(ctx, app)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap token verifier", err)
		os.Exit(1)
	}

	var sender mailer.Sender
	if s := mailer.NewSMTPSender(cfg.SMTP); s != nil {
		sender = s
	} else {
		logg.Warn(ctx, "smtp not configured, outbound mail disabled")
	}
	dispatcher := mailer.NewDispatcher(sender, logg)

	userRepo := usersvc.NewRepository(store.Conn())
	userService, err := usersvc.NewService(userRepo, dispatcher)
	if err != nil {
		logg.Error(ctx, "failed to create user service", err)
		os.Exit(1)
	}

	shopRepo := shopsvc.NewRepository(store.Conn())
	shopService, err := shopsvc.NewService(shopRepo, userService, dispatcher)
	if err != nil {
		logg.Error(ctx, "failed to create shop service", err)
		os.Exit(1)
	}

	productRepo := productsvc.NewRepository(store.Conn())
	productService, err := productsvc.NewService(productRepo, shopRepo, userService, dispatcher)
	if err != nil {
		logg.Error(ctx, "failed to create product service", err)
		os.Exit(1)
	}

	cartRepo := cartsvc.NewRepository(store.Conn())
	cartService, err := cartsvc.NewService(cartRepo)
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	orderRepo := ordersrepo.NewRepository(store.Conn())
	checkoutService, err := checkoutsvc.NewService(cartRepo, orderRepo, shopRepo, logg)
	if err != nil {
		logg.Error(ctx, "failed to create checkout service", err)
		os.Exit(1)
	}

	reviewRepo := reviewsvc.NewRepository(store.Conn())
	reviewService, err := reviewsvc.NewService(reviewRepo)
	if err != nil {
		logg.Error(ctx, "failed to create review service", err)
		os.Exit(1)
	}

	// Role lookups hit the users collection on every request. The Redis cache
	// is opt-in; the TTL bounds how long a revoked role keeps working.
	var roleResolver middleware.RoleResolver = userService
	var invalidateRole func(r *http.Request, uid string)
	if cfg.Roles.Enabled() && cfg.Redis.Configured() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}()

		cached := usersvc.NewCachedRoleResolver(userService, redisClient, cfg.Roles.TTL, logg)
		roleResolver = cached
		invalidateRole = func(r *http.Request, uid string) {
			cached.Invalidate(r.Context(), uid)
		}
	}

	router := routes.NewRouter(routes.Deps{
		Config:         cfg,
		Logger:         logg,
		Metrics:        metrics.NewHTTPMetrics(),
		Verifier:       verifier,
		Roles:          roleResolver,
		Store:          store,
		Users:          userService,
		Shops:          shopService,
		Products:       productService,
		Cart:           cartService,
		Checkout:       checkoutService,
		Reviews:        reviewService,
		InvalidateRole: invalidateRole,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(startCtx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
