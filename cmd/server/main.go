package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/grocify/internal/config"
	"github.com/Lixing-Zhang/grocify/internal/handlers"
	"github.com/Lixing-Zhang/grocify/internal/metrics"
	"github.com/Lixing-Zhang/grocify/internal/middleware"
	"github.com/Lixing-Zhang/grocify/internal/repository"
	"github.com/Lixing-Zhang/grocify/internal/service"
	"github.com/Lixing-Zhang/grocify/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from CONFIG_FILE and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting grocify api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"session_ttl", cfg.Session.SessionTTL().String(),
	)

	collector := metrics.NewCollector("grocify")
	catalogRepo := repository.NewInMemoryCatalogRepository()
	sessionService := service.NewSessionService(catalogRepo, log, service.WithRecorder(collector))

	// Evict idle sessions until shutdown
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sessionService.RunSweeper(sweepCtx, cfg.Session.Interval(), cfg.Session.SessionTTL())

	r := newRouter(cfg, log, catalogRepo, sessionService, collector)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully", "sessions_dropped", sessionService.SessionCount())
}

// newRouter builds the HTTP routes and middleware stack
func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	catalogRepo repository.CatalogRepository,
	sessionService *service.SessionService,
	collector *metrics.Collector,
) *chi.Mux {
	healthHandler := handlers.NewHealthHandler(sessionService, log)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo, log)
	sessionHandler := handlers.NewSessionHandler(sessionService, log)
	cartHandler := handlers.NewCartHandler(sessionService, log)
	listHandler := handlers.NewListHandler(sessionService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(collector))
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, collector.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{category}", catalogHandler.GetCategory)

		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Delete("/", sessionHandler.EndSession)
			r.Get("/products", sessionHandler.VisibleProducts)
			r.Post("/categories/{category}/toggle", sessionHandler.ToggleCategory)

			// Cart
			r.Get("/cart", cartHandler.GetCart)
			r.Delete("/cart", cartHandler.ClearCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{product}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{product}", cartHandler.RemoveItem)

			// Saved lists
			r.Post("/lists", listHandler.SaveList)
			r.Get("/lists", listHandler.ListLists)
			r.Get("/lists/{listId}", listHandler.GetList)
			r.Delete("/lists/{listId}", listHandler.DeleteList)
			r.Post("/lists/{listId}/items/{item}/toggle", listHandler.ToggleItem)
			r.Put("/lists/{listId}/items/{item}", listHandler.UpdateItem)
		})
	})

	return r
}
