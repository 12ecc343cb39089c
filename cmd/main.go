package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"marketplace-service/internal/config"
	"marketplace-service/internal/database/mongo"
	"marketplace-service/internal/database/redis"
	"marketplace-service/internal/event"
	"marketplace-service/internal/handlers"
	"marketplace-service/internal/recommendation"
	"marketplace-service/internal/repository"
	"marketplace-service/internal/service"
	"marketplace-service/internal/worker"
	"marketplace-service/pkg/discovery"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/var", "log", "marketplace_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.ServiceConfig

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Marketplace Service is healthy")
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongo.Mongo_Database)
	brandRepo := repository.NewBrandRepository(mongo.Mongo_Database)
	prefRepo := repository.NewPreferenceRepository(mongo.Mongo_Database)
	creatorRepo := repository.NewCreatorRepository(mongo.Mongo_Database)
	metricsRepo := repository.NewMetricsRepository(mongo.Mongo_Database)
	campaignRepo := repository.NewCampaignRepository(mongo.Mongo_Database)
	recoRepo := repository.NewRecommendationRepository(mongo.Mongo_Database)
	orderRepo := repository.NewOrderRepository(mongo.Mongo_Database)
	counterRepo := repository.NewCounterRepository(mongo.Mongo_Database)
	paymentRepo := repository.NewPaymentRepository(mongo.Mongo_Database)
	likeRepo := repository.NewLikeRepository(mongo.Mongo_Database)
	quoteRepo := repository.NewQuoteRepository(mongo.Mongo_Database)
	cacheRepo := repository.NewCacheRepository(redis.Redis_Client)

	// Create database indexes
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	indexed := []interface {
		CreateIndexes(ctx context.Context) error
	}{
		userRepo, brandRepo, prefRepo, creatorRepo, metricsRepo,
		campaignRepo, recoRepo, orderRepo, paymentRepo, likeRepo, quoteRepo,
	}
	for _, repo := range indexed {
		if err := repo.CreateIndexes(ctx); err != nil {
			log.Printf("Warning: Failed to create database indexes: %v", err)
		}
	}
	cancel()
	log.Println("Database indexes created")

	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher, events disabled: %v", err)
		eventPublisher = event.NewDisabledPublisher()
	}

	eventConsumer, err := event.NewEventConsumer(cfg.RabbitMQ.URI, userRepo, brandRepo, metricsRepo)
	if err != nil {
		log.Printf("Warning: Failed to initialize event consumer: %v", err)
		eventConsumer = nil
	} else {
		if err := eventConsumer.Start(); err != nil {
			log.Printf("Warning: Failed to start event consumer: %v", err)
			eventConsumer.Stop()
			eventConsumer = nil
		} else {
			log.Println("Successfully started event consumer")
		}
	}

	// Recommendation pipeline
	generator := recommendation.NewGenerator(creatorRepo, cfg.Recommendation)
	policy := recommendation.NewPolicy(generator, brandRepo, prefRepo, creatorRepo, recoRepo, cacheRepo, cfg.Recommendation)

	// Initialize services
	brandService := service.NewBrandService(brandRepo, prefRepo)
	creatorService := service.NewCreatorService(creatorRepo, userRepo, metricsRepo, eventPublisher)
	campaignService := service.NewCampaignService(campaignRepo, brandRepo)
	matchService := service.NewMatchService(brandRepo, prefRepo, creatorRepo, metricsRepo, campaignRepo)
	recoService := service.NewRecommendationService(policy, eventPublisher)
	orderService := service.NewOrderService(orderRepo, creatorRepo, counterRepo, eventPublisher)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, eventPublisher)
	quoteService := service.NewQuoteService(quoteRepo, creatorRepo)
	likeService := service.NewLikeService(likeRepo, creatorRepo)

	// Initialize and register handlers
	handlers.NewBrandHandler(brandService).RegisterRoutes(app)
	handlers.NewCreatorHandler(creatorService).RegisterRoutes(app)
	handlers.NewCampaignHandler(campaignService).RegisterRoutes(app)
	handlers.NewMatchHandler(matchService).RegisterRoutes(app)
	handlers.NewRecommendationHandler(recoService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(app)
	handlers.NewQuoteHandler(quoteService).RegisterRoutes(app)
	handlers.NewLikeHandler(likeService).RegisterRoutes(app)

	// Background social refresh
	socialWorker := worker.NewSocialRefreshWorker(
		creatorRepo, metricsRepo, cacheRepo, nil,
		cfg.Worker.SocialRefreshInterval, cfg.Worker.SocialRefreshLockTTL,
	)
	socialWorker.Start()

	// Service discovery
	registry, err := discovery.NewServiceRegistry(cfg)
	if err != nil {
		log.Printf("Warning: Failed to create Consul client: %v", err)
	} else if err := registry.Register(); err != nil {
		log.Printf("Warning: Failed to register with Consul: %v", err)
	}

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	socialWorker.Stop()

	if eventConsumer != nil {
		eventConsumer.Stop()
	}

	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}

	mongo.DisconnectMongo()

	if registry != nil {
		if err := registry.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}
