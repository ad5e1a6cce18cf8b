package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/terteryan-memorial/backend/docs"
	"github.com/terteryan-memorial/backend/internal/config"
	"github.com/terteryan-memorial/backend/internal/geo"
	"github.com/terteryan-memorial/backend/internal/handlers"
	"github.com/terteryan-memorial/backend/internal/logger"
	loggerMiddleware "github.com/terteryan-memorial/backend/internal/logger/middleware"
	"github.com/terteryan-memorial/backend/internal/middlewares"
	"github.com/terteryan-memorial/backend/internal/repositories"
	"github.com/terteryan-memorial/backend/internal/services"
	"github.com/terteryan-memorial/backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Terteryan Memorial Site API
// @version 1.0
// @description Media catalog and upload API for the composer memorial website

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting memorial site backend",
		zap.String("data_file", cfg.Media.DataFile),
		zap.String("media_base_path", cfg.Media.BasePath),
	)

	// Initialize storage and repositories
	fileStorage := storage.NewLocalStorage(cfg.Media.BasePath)
	catalogRepo := repositories.NewCatalogRepository(cfg.Media.DataFile, logger.Logger)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo)
	uploadService := services.NewUploadService(fileStorage)
	geoClient := geo.NewClient(cfg.Geo.ProviderURL, cfg.Geo.Timeout, logger.Logger)

	// Initialize handlers
	mediaHandler := handlers.NewMediaHandler(catalogService, logger.Logger)
	uploadHandler := handlers.NewUploadHandler(uploadService, logger.Logger)
	geoHandler := handlers.NewGeoHandler(geoClient, logger.Logger)

	// Setup router
	r := newRouter(cfg, logger.Logger, mediaHandler, uploadHandler, geoHandler)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // Longer timeout for file uploads
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// newRouter builds the full middleware chain and route table
func newRouter(
	cfg *config.Config,
	log *zap.Logger,
	mediaHandler *handlers.MediaHandler,
	uploadHandler *handlers.UploadHandler,
	geoHandler *handlers.GeoHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(log))
	r.Use(middlewares.RecoveryMiddleware(log))
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middlewares.RequestSizeLimitMiddleware(storage.MaxUploadSize() + 1<<20))

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// API routes. The rate limit stays inside this group; the static media
	// mounts below are exempt so gallery preloading is not throttled.
	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, time.Minute))
		mediaHandler.RegisterRoutes(r)
		uploadHandler.RegisterRoutes(r)
		geoHandler.RegisterRoutes(r)
	})

	// Uploaded originals are served straight from the public static root
	fileServer := http.FileServer(http.Dir(cfg.Media.BasePath))
	for _, prefix := range []string{"/photos", "/videos", "/audio", "/documents"} {
		r.Handle(prefix+"/*", fileServer)
	}

	return r
}
