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

	"github.com/gin-gonic/gin"

	"cardapio-admin-svc/docs"
	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/config"
	"cardapio-admin-svc/internal/database"
	"cardapio-admin-svc/internal/handler"
	"cardapio-admin-svc/internal/imageref"
	"cardapio-admin-svc/internal/middleware"
	"cardapio-admin-svc/internal/repository"
	"cardapio-admin-svc/internal/scheduler"
	"cardapio-admin-svc/internal/service"
	"cardapio-admin-svc/pkg/logger"
)

// @title Cardapio Admin Service API
// @version 1.0
// @description Backend for the bar, menu and event admin panel

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Cardapio Admin Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	operationLogRepo := repository.NewOperationLogRepository(db.DB)

	// Menu API client and the shared image index
	client := cardapio.NewClient(cfg.Upstream, appLogger)
	index := imageref.NewIndex()
	resolver := imageref.NewResolver(index, imageref.Options{
		Placeholder:  cfg.Images.PlaceholderURL,
		TrustedHosts: cfg.Images.TrustedHosts,
		LegacyHosts:  cfg.Images.LegacyHosts,
	})

	// Initialize services
	auditor := service.NewAuditor(operationLogRepo, appLogger)
	galleryService := service.NewGalleryService(client, index, resolver, appLogger)
	services := handler.Services{
		Menu:         service.NewMenuService(client, galleryService, auditor, cfg.Bulk.Concurrency, appLogger),
		QuickEdit:    service.NewQuickEditService(client, auditor, cfg.Bulk.Concurrency, appLogger),
		Gallery:      galleryService,
		Event:        service.NewEventService(client, galleryService, appLogger),
		Promoter:     service.NewPromoterService(client, auditor, appLogger),
		OperationLog: service.NewOperationLogService(operationLogRepo),
	}

	// Initialize scheduler
	galleryScheduler := scheduler.NewGalleryScheduler(galleryService, auditor, appLogger, cfg.Scheduler.GalleryRefreshCron)
	if err := galleryScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start gallery scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	// Setup routes
	handler.SetupRoutes(router, services, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop scheduler
	galleryScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
