package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"omm/config"
	"omm/database/repository/api"
	"omm/handlers"
	"omm/middleware"
	"omm/routes"
	"omm/services/booking"
	"omm/services/catalog"
	"omm/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitDraftCache()
	utils.InitCatalogCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Platform API client and repositories.
	client := api.NewClient(config.AppConfig.PlatformAPIURL, config.AppConfig.PlatformAPIToken)
	bookingRepo := api.NewBookingRepo(client)
	catalogRepo := api.NewCatalogRepo(client)
	assignmentRepo := api.NewAssignmentRepo(client)

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: utils.NewRedisStore(utils.GetDraftCacheClient()),
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catalogRepo,
		Cache: utils.NewRedisStore(utils.GetCatalogCacheClient()),
	}
	assignmentEngine := &booking.AssignmentEngine{
		Repo: assignmentRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:    handlers.NewBookingHandler(bookingService),
		Catalog:    handlers.NewCatalogHandler(catalogService, bookingService),
		Assignment: handlers.NewAssignmentHandler(assignmentEngine, bookingService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
