// File: hireme/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireme/config"
	"hireme/database"
	bookingRepoPkg "hireme/database/repository/booking"
	messageRepoPkg "hireme/database/repository/message"
	providerRepoPkg "hireme/database/repository/provider"
	reviewRepoPkg "hireme/database/repository/review"
	userRepoPkg "hireme/database/repository/user"
	"hireme/handlers"
	"hireme/middleware"
	"hireme/routes"
	bookingSvc "hireme/services/booking"
	"hireme/services/directory"
	"hireme/services/interpreter"
	"hireme/services/messaging"
	reviewSvc "hireme/services/review"
	userSvc "hireme/services/user"
	"hireme/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, database.MongoClient,
		utils.GetCacheClient(), utils.GetSessionCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	directoryService := directory.NewDefaultDirectoryService(provRepo)

	userService := &userSvc.DefaultUserService{
		Repo:      userRepo,
		Providers: provRepo,
		Sessions:  utils.GetSessionCacheClient(),
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bookRepo,
		Messages:  msgRepo,
		Users:     userRepo,
		Directory: directoryService,
	}

	messagingService := &messaging.DefaultMessagingService{
		Messages: msgRepo,
		Bookings: bookRepo,
	}

	reviewService := reviewSvc.NewDefaultReviewService(revRepo, bookRepo, provRepo)

	var queryInterpreter interpreter.QueryInterpreter = interpreter.NewKeywordInterpreter()
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := interpreter.NewGeminiInterpreter(key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini unavailable, keyword interpreter only: %v", err)
		} else {
			queryInterpreter = gemini
		}
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:    userRepo,
		Users:       userService,
		Directory:   directoryService,
		Bookings:    bookingService,
		Messaging:   messagingService,
		Reviews:     reviewService,
		Interpreter: queryInterpreter,
	}

	// Register routes with the assembled handler bundle.
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
