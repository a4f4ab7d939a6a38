package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/api"
	"careconnect-backend-go/internal/config"
	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/middleware"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.NewClients(initCtx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	serviceRepo := db.NewFirestoreServiceRepository(clients.Firestore)
	bookingRepo := db.NewFirestoreBookingRepository(clients.Firestore)
	testimonialRepo := db.NewFirestoreTestimonialRepository(clients.Firestore)
	contentRepo := db.NewFirestoreContentRepository(clients.Firestore)
	activityRepo := db.NewFirestoreActivityLogRepository(clients.Firestore)

	activityService := core.NewActivityService(activityRepo)
	userService := core.NewUserService(userRepo, activityService, logger)
	catalogService := core.NewCatalogService(serviceRepo)
	bookingService := core.NewBookingService(bookingRepo, serviceRepo, userRepo, activityService, logger)
	contentService := core.NewContentService(contentRepo)
	testimonialService := core.NewTestimonialService(testimonialRepo)
	paymentService := core.NewPaymentService(
		core.NewStripePaymentClient(cfg.StripeSecretKey), cfg.PaymentCurrency)

	if strings.EqualFold(cfg.GinMode, "release") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORS(cfg.ClientURL))
	} else {
		logger.Warn("CLIENT_URL not configured; CORS middleware disabled")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth, userRepo, logger)
	api.SetupRoutes(router, authMW, api.Services{
		Users:        userService,
		Catalog:      catalogService,
		Bookings:     bookingService,
		Content:      contentService,
		Testimonials: testimonialService,
		Activity:     activityService,
		Payments:     paymentService,
	}, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
