package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/adapter/ai/anthropic"
	"github.com/seu-repo/acessa/internal/adapter/ai/gemini"
	"github.com/seu-repo/acessa/internal/adapter/ai/openai"
	"github.com/seu-repo/acessa/internal/adapter/ai/stub"
	"github.com/seu-repo/acessa/internal/adapter/cache"
	"github.com/seu-repo/acessa/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/acessa/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/acessa/internal/adapter/queue"
	"github.com/seu-repo/acessa/internal/adapter/storage/postgres"
	"github.com/seu-repo/acessa/internal/adapter/vault"
	wsAdapter "github.com/seu-repo/acessa/internal/adapter/websocket"
	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
	"github.com/seu-repo/acessa/internal/ports"
	"github.com/seu-repo/acessa/internal/service/assistant"
	"github.com/seu-repo/acessa/internal/service/auth"
	"github.com/seu-repo/acessa/internal/service/braille"
	"github.com/seu-repo/acessa/internal/service/catalog"
	"github.com/seu-repo/acessa/internal/service/email"
	"github.com/seu-repo/acessa/internal/service/health"
	"github.com/seu-repo/acessa/pkg/config"
)

const (
	serviceName    = "acessa"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting ACESSA",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Resolve secrets from Vault when enabled
	if cfg.Vault.Enabled {
		resolveSecrets(cfg, logger)
	}

	// 4. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Initialize Cache (Redis, local fallback for development)
	appCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-process cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 7. Initialize Message Queue
	messageQueue, err := newMessageQueue(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// 8. Initialize Repositories
	contentRepo := postgres.NewContentRepository(db, logger)
	favoriteRepo := postgres.NewFavoriteRepository(db, logger)
	ratingRepo := postgres.NewRatingRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)

	// 9. Initialize Services (Business Logic Layer)
	authService := auth.NewService(userRepo, appCache, cfg.JWT.Secret, logger)
	brailleService := braille.NewService(logger)
	catalogService := catalog.NewService(
		contentRepo, favoriteRepo, ratingRepo, appCache, messageQueue,
		cfg.Streaming.BaseURL, cfg.Streaming.Secret, cfg.Streaming.TicketTTL,
		logger,
	)

	emailService, err := email.NewService(emailConfig(cfg), logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	// 10. Initialize Command Assistant
	aiProvider := newAIProvider(cfg, logger)
	router := assistant.NewRouter(contentRepo, logger)
	assistantService := assistant.NewService(router, aiProvider, messageQueue, logger)

	// 11. Initialize Gemini Live API Client (voice streaming)
	var liveClient *gemini.LiveClient
	if cfg.AI.GeminiAPIKey != "" {
		liveClient = gemini.NewLiveClient(cfg.AI.GeminiAPIKey, logger)
	}

	// 12. Initialize WebSocket Hub (for real-time updates)
	wsHub := wsAdapter.NewHub()
	go wsHub.Run()
	startCatalogEventFanout(messageQueue, wsHub, logger)

	// 13. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.NewErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	} else {
		app.Use(middleware.DefaultCORS())
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.NewCircuitBreaker(logger))
	}

	// Health Check Endpoints
	healthService := health.NewService(&health.Config{
		Version: serviceVersion,
		DB:      sqlDB,
		NatsURL: cfg.Queue.NATSURL,
	}, logger)
	health.NewFiberHandler(healthService).RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	if cfg.Prometheus.Enabled {
		metricsPath := cfg.Prometheus.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		promHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(metricsPath, func(c *fiber.Ctx) error {
			promHandler(c.Context())
			return nil
		})
	}

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, emailService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)

	// Assistant routes
	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)
	protected.Post("/assistant/interpret", assistantHandler.Interpret)

	// Braille routes
	brailleHandler := handlers.NewBrailleHandler(
		brailleService,
		domain.BrailleGrade(cfg.Braille.DefaultGrade),
		cfg.Braille.CellsPerLine,
		logger,
	)
	protected.Post("/braille/encode", brailleHandler.Encode)

	// Catalog routes
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	protected.Get("/content", catalogHandler.SearchContent)
	protected.Get("/content/:id", catalogHandler.GetContent)
	protected.Get("/content/:id/accessibility", catalogHandler.GetAccessibilityScore)
	protected.Get("/content/:id/stream", catalogHandler.GetStreamURL)
	protected.Get("/content/:id/ratings", catalogHandler.GetRatingSummary)
	protected.Post("/content/:id/ratings", catalogHandler.RateContent)
	protected.Get("/favorites", catalogHandler.ListFavorites)
	protected.Post("/favorites/:contentId", catalogHandler.AddFavorite)
	protected.Delete("/favorites/:contentId", catalogHandler.RemoveFavorite)

	// Real-time updates WebSocket
	app.Use("/ws/updates", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/updates", websocket.New(func(c *websocket.Conn) {
		userID := c.Query("userId", "guest")
		wsHub.AddClient(c, userID)
	}))

	// Interactive command/voice WebSocket
	commandStreamHandler := wsAdapter.NewCommandStreamHandler(assistantService, liveClient, logger)
	wsAdapter.SetupCommandStreamRoutes(app, commandStreamHandler)

	// 14. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 15. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// resolveSecrets fills missing config values from Vault. Values already set
// by file or environment win.
func resolveSecrets(cfg *config.Config, logger *zap.Logger) {
	sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
	if err != nil {
		logger.Warn("Vault unavailable, using config secrets", zap.Error(err))
		return
	}

	if cfg.Database.URL == "" {
		if url, err := sm.GetDatabaseCredentials(); err == nil {
			cfg.Database.URL = url
		}
	}
	if cfg.JWT.Secret == "" {
		if secret, err := sm.GetJWTSecret(); err == nil {
			cfg.JWT.Secret = secret
		}
	}
	if cfg.AI.OpenAIAPIKey == "" {
		if key, err := sm.GetAIProviderKey("openai"); err == nil {
			cfg.AI.OpenAIAPIKey = key
		}
	}
	if cfg.AI.AnthropicAPIKey == "" {
		if key, err := sm.GetAIProviderKey("anthropic"); err == nil {
			cfg.AI.AnthropicAPIKey = key
		}
	}
	if cfg.AI.GeminiAPIKey == "" {
		if key, err := sm.GetAIProviderKey("gemini"); err == nil {
			cfg.AI.GeminiAPIKey = key
		}
	}
	if cfg.Email.SendGridAPIKey == "" {
		if key, err := sm.GetSendGridAPIKey(); err == nil {
			cfg.Email.SendGridAPIKey = key
		}
	}
}

func newMessageQueue(cfg *config.Config, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Queue.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.Queue.RabbitMQURL, logger)
	default:
		return queue.NewNATSQueue(cfg.Queue.NATSURL, logger)
	}
}

func newAIProvider(cfg *config.Config, logger *zap.Logger) ports.AIProvider {
	switch cfg.AI.Provider {
	case "openai":
		return openai.NewClient(cfg.AI.OpenAIAPIKey, logger)
	case "anthropic":
		return anthropic.NewClient(cfg.AI.AnthropicAPIKey, logger)
	default:
		return stub.New()
	}
}

func emailConfig(cfg *config.Config) *email.Config {
	if cfg.Email.Provider == "" {
		return email.DefaultConfig()
	}
	return &email.Config{
		Provider:       cfg.Email.Provider,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
		BaseURL:        cfg.Email.BaseURL,
	}
}

// startCatalogEventFanout relays catalog events from the broker to connected
// websocket clients.
func startCatalogEventFanout(mq queue.MessageQueue, hub *wsAdapter.Hub, logger *zap.Logger) {
	subjects := []string{"favorite.added", "rating.created", "command.interpreted"}
	for _, subject := range subjects {
		if err := mq.Subscribe(subject, func(msg []byte) error {
			hub.Broadcast(msg)
			return nil
		}); err != nil {
			logger.Warn("Failed to subscribe to subject",
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}
}
