package main

import (
	"context"
	"fmt"
	"mohini-backend/config"
	"mohini-backend/internal/delivery/http/middleware"
	v1 "mohini-backend/internal/delivery/http/v1"
	"mohini-backend/internal/infrastructure/cache"
	pgrepo "mohini-backend/internal/repository/postgres"
	redisrepo "mohini-backend/internal/repository/redis"
	"mohini-backend/internal/store"
	"mohini-backend/internal/usecase"
	"mohini-backend/pkg/logger"
	"mohini-backend/pkg/storage"
	"mohini-backend/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database with pgx
	pgxPool, err := pgrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	// Initialize Repositories
	userRepo := pgrepo.NewUserRepository(pgxPool)
	productRepo := pgrepo.NewProductRepository(pgxPool)
	orderRepo := pgrepo.NewOrderRepository(pgxPool)

	// Cart/wishlist snapshots live in Redis. Without a reachable Redis the
	// server still runs, carts just don't survive restarts.
	var snapshots store.Snapshots
	redisClient, err := redisrepo.NewClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory snapshots")
		snapshots = store.NewMemorySnapshots()
	} else {
		log.Info().Msg("Successfully connected to Redis")
		snapshots = redisrepo.NewSnapshotStore(redisClient, cfg.SnapshotTTL)
	}
	stores := store.NewManager(snapshots)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Auth Module
	authUC := usecase.NewAuthUsecase(cfg.AdminEmail, cfg.AdminPassword, cfg.AccessTokenExpiry)
	authHandler := v1.NewAuthHandler(authUC)

	// --- Storage Module (R2) ---
	var r2Storage *storage.R2Storage
	if cfg.R2AccountID != "" {
		r2Storage, err = storage.NewR2Storage(
			context.Background(),
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2PublicURL,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize R2 Storage")
		}
	} else {
		log.Warn().Msg("R2 not configured, image uploads disabled")
	}
	uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(productRepo, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)
	adminCatalogHandler := v1.NewAdminCatalogHandler(catalogUC)

	// Cart & Order Module
	cartUC := usecase.NewCartUsecase(stores, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, userRepo, stores)
	cartHandler := v1.NewCartHandler(cartUC, orderUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC)

	// Wishlist Module
	wishlistUC := usecase.NewWishlistUsecase(stores, productRepo)
	wishlistHandler := v1.NewWishlistHandler(wishlistUC)

	// Auth
	mux.HandleFunc("POST /api/v1/admin/login", authHandler.AdminLogin)
	mux.HandleFunc("POST /api/v1/admin/logout", authHandler.Logout)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProductByID)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/{productId}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("POST /api/v1/checkout", cartHandler.Checkout)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", wishlistHandler.AddItem)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", wishlistHandler.RemoveItem)
	mux.HandleFunc("GET /api/v1/wishlist/{productId}", wishlistHandler.CheckItem)

	// Admin (Protected)
	adminMiddleware := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	mux.Handle("GET /api/v1/admin/products", adminMiddleware(adminCatalogHandler.ListProducts))
	mux.Handle("POST /api/v1/admin/products", adminMiddleware(adminCatalogHandler.CreateProduct))
	mux.Handle("PUT /api/v1/admin/products/{id}", adminMiddleware(adminCatalogHandler.UpdateProduct))
	mux.Handle("PATCH /api/v1/admin/products/{id}/status", adminMiddleware(adminCatalogHandler.UpdateProductStatus))
	mux.Handle("DELETE /api/v1/admin/products/{id}", adminMiddleware(adminCatalogHandler.DeleteProduct))

	mux.Handle("GET /api/v1/admin/orders", adminMiddleware(adminOrderHandler.ListOrders))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminMiddleware(adminOrderHandler.UpdateStatus))

	mux.Handle("POST /api/v1/admin/upload", adminMiddleware(uploadHandler.UploadFile))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok", "db": "connected"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,            // requests per second
		100,           // burst
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Session, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewSessionMiddleware(cfg)(mux)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if redisClient != nil {
		redisClient.Close()
	}
	pgxPool.Close()

	log.Info().Msg("Server exited properly")
}
