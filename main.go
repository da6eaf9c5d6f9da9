// File: pawhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawhub/config"
	"pawhub/database"
	bookingRepoPkg "pawhub/database/repository/booking"
	businessRepoPkg "pawhub/database/repository/business"
	catalogRepoPkg "pawhub/database/repository/catalog"
	userRepoPkg "pawhub/database/repository/user"
	"pawhub/handlers"
	"pawhub/middleware"
	"pawhub/routes"
	"pawhub/services/booking"
	"pawhub/services/business"
	"pawhub/services/catalog"
	"pawhub/services/user"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// Services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	businessService := &business.DefaultBusinessService{
		Repo:      businessRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: utils.GetCacheClient(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	// Handlers.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,
		User:         handlers.NewUserHandler(userService, logger),
		Business:     handlers.NewBusinessHandler(businessService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService, logger),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService, bookingService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
