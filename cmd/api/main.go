package main

import (
	"context"
	"log"
	"time"

	"meditrack/internal/core/cache"
	"meditrack/internal/core/config"
	"meditrack/internal/core/logger"
	"meditrack/internal/core/server"
	"meditrack/internal/core/storage"
	authadapter "meditrack/internal/features/auth/adapters"
	authhandler "meditrack/internal/features/auth/handler"
	authservice "meditrack/internal/features/auth/service"
	chatbothandler "meditrack/internal/features/chatbot/handler"
	chatbotservice "meditrack/internal/features/chatbot/service"
	feedbackadapter "meditrack/internal/features/feedback/adapters"
	feedbackhandler "meditrack/internal/features/feedback/handler"
	feedbackservice "meditrack/internal/features/feedback/service"
	inventoryadapter "meditrack/internal/features/inventory/adapters"
	inventoryhandler "meditrack/internal/features/inventory/handler"
	inventoryservice "meditrack/internal/features/inventory/service"
	salesadapter "meditrack/internal/features/sales/adapters"
	saleshandler "meditrack/internal/features/sales/handler"
	salesservice "meditrack/internal/features/sales/service"
	trackingadapter "meditrack/internal/features/tracking/adapters"
	trackinghandler "meditrack/internal/features/tracking/handler"
	trackingservice "meditrack/internal/features/tracking/service"
	trainingadapter "meditrack/internal/features/training/adapters"
	traininghandler "meditrack/internal/features/training/handler"
	trainingservice "meditrack/internal/features/training/service"
	verificationadapter "meditrack/internal/features/verification/adapters"
	verificationhandler "meditrack/internal/features/verification/handler"
	verificationservice "meditrack/internal/features/verification/service"

	"go.uber.org/zap"
)

// @title MediTrack API
// @version 1.0
// @description Pharmaceutical distribution operations API: shipment tracking, certification verification, inventory, sales demand, training and feedback.
// @contact.name API Support
// @contact.email support@meditrack.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize storage and run migrations
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer store.Close()

	if cfg.Database.Seed {
		if err := store.Seed(); err != nil {
			l.Fatal("Failed to seed database", zap.Error(err))
		}
		l.Info("Database seeded")
	}

	// Initialize cache and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Tracking Service & Handler
	shipmentRepo := trackingadapter.NewSQLiteShipmentRepository(store.DB())
	trackingTTL := time.Duration(cfg.Redis.TrackingTTLSeconds) * time.Second
	trackingSvc := trackingservice.NewTrackingService(shipmentRepo, redisCache, trackingTTL)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Verification Service & Handler
	certRepo := verificationadapter.NewSQLiteCertificationRepository(store.DB())
	verificationSvc := verificationservice.NewVerificationService(certRepo)
	verificationHdl := verificationhandler.NewVerificationHandler(verificationSvc)

	// Initialize Inventory Service & Handler
	itemRepo := inventoryadapter.NewSQLiteItemRepository(store.DB())
	inventorySvc := inventoryservice.NewInventoryService(itemRepo)
	inventoryHdl := inventoryhandler.NewInventoryHandler(inventorySvc)

	// Initialize Sales Service & Handler
	demandRepo := salesadapter.NewSQLiteDemandRepository(store.DB())
	salesSvc := salesservice.NewSalesService(demandRepo)
	salesHdl := saleshandler.NewSalesHandler(salesSvc)

	// Initialize Training Service & Handler
	bookingRepo := trainingadapter.NewSQLiteBookingRepository(store.DB())
	trainingSvc := trainingservice.NewTrainingService(bookingRepo)
	trainingHdl := traininghandler.NewTrainingHandler(trainingSvc)

	// Initialize Feedback Service & Handler
	feedbackRepo := feedbackadapter.NewSQLiteFeedbackRepository(store.DB())
	feedbackSvc := feedbackservice.NewFeedbackService(feedbackRepo)
	feedbackHdl := feedbackhandler.NewFeedbackHandler(feedbackSvc)

	// Initialize Chatbot Service & Handler
	chatbotSvc := chatbotservice.NewChatbotService()
	chatbotHdl := chatbothandler.NewChatbotHandler(chatbotSvc)

	// Initialize Auth Service & Handler
	userRepo := authadapter.NewSQLiteUserRepository(store.DB())
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authSvc := authservice.NewAuthService(userRepo, cfg.Auth.Secret, tokenTTL)
	authHdl := authhandler.NewAuthHandler(authSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/api/login", authHdl.Login)
	srv.App.Post("/api/register", authHdl.Register)
	srv.App.Get("/api/track_order", trackingHdl.TrackOrder)
	srv.App.Post("/api/track_order/:orderId/events", trackingHdl.AppendEvent)
	srv.App.Post("/api/verify_certification", verificationHdl.VerifyCertification)
	srv.App.Get("/api/inventory", inventoryHdl.ListItems)
	srv.App.Post("/api/inventory", inventoryHdl.AddItem)
	srv.App.Put("/api/inventory/:id", inventoryHdl.UpdateItem)
	srv.App.Delete("/api/inventory/:id", inventoryHdl.DeleteItem)
	srv.App.Get("/api/sales_demand", salesHdl.Demand)
	srv.App.Post("/api/book_training", trainingHdl.Book)
	srv.App.Post("/api/submit_feedback", feedbackHdl.Submit)
	srv.App.Post("/api/chatbot", chatbotHdl.Chat)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
