package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"sellerhub/configs"
	"sellerhub/internal/adapter"
	"sellerhub/internal/auth"
	"sellerhub/internal/database"
	delivery "sellerhub/internal/delivery/http"
	"sellerhub/internal/infra"
	"sellerhub/internal/middleware"
	"sellerhub/internal/repository"
	"sellerhub/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	if cfg.Server.Env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dreRepo := repository.NewDRERepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	productRepo := repository.NewProductRepository(db)
	researchRepo := repository.NewResearchRepository(db)
	savedAdRepo := repository.NewSavedAdRepository(db)

	// Initialize integration bridges
	storeGateway := adapter.NewStoreBridge(cfg.Bridge.StoreURL)
	marketProvider := adapter.NewMarketBridge(cfg.Bridge.MarketURL)

	// Initialize auth
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	session := auth.NewSession(tokenManager, userRepo)
	authenticator := middleware.NewAuthenticator(session)

	// Initialize services
	authService := service.NewAuthService(userRepo, session)
	userService := service.NewUserService(userRepo, dreRepo, pricingRepo, connectionRepo, productRepo, researchRepo, savedAdRepo)
	calculatorService := service.NewCalculatorService(dreRepo, pricingRepo)
	connectionService := service.NewConnectionService(connectionRepo, productRepo, storeGateway)
	researchService := service.NewResearchService(researchRepo, marketProvider)
	savedAdService := service.NewSavedAdService(savedAdRepo)

	// Background sync sweep for stale store connections
	scheduler := infra.NewScheduler(connectionService, cfg.Sync.StaleAfter)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize API server
	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		Authenticator:     authenticator,
		RateLimit:         cfg.RateLimit,
		DB:                db,
		AuthHandler:       delivery.NewAuthHandler(authService),
		UserHandler:       delivery.NewUserHandler(userService),
		CalculatorHandler: delivery.NewCalculatorHandler(calculatorService),
		ConnectionHandler: delivery.NewConnectionHandler(connectionService),
		ResearchHandler:   delivery.NewResearchHandler(researchService),
		SavedAdHandler:    delivery.NewSavedAdHandler(savedAdService),
	})

	// Ops listener: liveness and readiness on a separate port so the
	// main API's auth and rate limiting never block probes
	ops := newOpsServer(cfg.Server.OpsPort, db)
	go func() {
		if err := ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start ops server: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("SellerHub API starting on %s", addr)
	log.Printf("Environment: %s", cfg.Server.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := ops.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ops server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}

// newOpsServer builds the chi router serving health probes
func newOpsServer(port string, db interface{ Ping(context.Context) error }) *http.Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}
