package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"videxcl-srv/config"
	configKafka "videxcl-srv/config/kafka"
	configMinio "videxcl-srv/config/minio"
	configPostgre "videxcl-srv/config/postgre"
	configRedis "videxcl-srv/config/redis"
	"videxcl-srv/internal/consumer"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/gemini"
	pkgHTTP "videxcl-srv/pkg/http"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/sheets"
	"videxcl-srv/pkg/vision"
	"videxcl-srv/pkg/ytapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Videxcl Consumer Service...")

	// Kafka producer (for fan-out between stages)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Kafka producer: %v", err)
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	objectStore, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MinIO: %v", err)
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Upstream API clients
	httpClient := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   30 * time.Second,
		Retries:   3,
		RetryWait: time.Second,
	})

	adsClient, err := adsapi.NewAdsReporting(adsapi.Config{
		BaseURL:        cfg.AdsAPI.BaseURL,
		DeveloperToken: cfg.AdsAPI.DeveloperToken,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize ads reporting client: %v", err)
	}
	logger.Info(ctx, "Ads reporting client initialized")

	ytClient, err := ytapi.NewContentAPI(ytapi.Config{
		BaseURL: cfg.YTAPI.BaseURL,
		APIKey:  cfg.YTAPI.APIKey,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize content api client: %v", err)
	}
	logger.Info(ctx, "Content API client initialized")

	visionClient, err := vision.NewVision(vision.Config{
		BaseURL: cfg.Vision.BaseURL,
		APIKey:  cfg.Vision.APIKey,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize vision client: %v", err)
	}
	logger.Info(ctx, "Vision client initialized")

	geminiClient, err := gemini.NewGemini(gemini.Config{
		BaseURL: cfg.Gemini.BaseURL,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize gemini client: %v", err)
	}
	logger.Info(ctx, "Gemini client initialized")

	sheetsClient, err := sheets.NewSheets(sheets.Config{
		BaseURL: cfg.Sheets.BaseURL,
		APIKey:  cfg.Sheets.APIKey,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize sheets client: %v", err)
	}
	logger.Info(ctx, "Sheets client initialized")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		KafkaConfig: cfg.Kafka,
		AppConfig:   cfg,

		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		ObjectStore:   objectStore,
		KafkaProducer: kafkaProducer,

		AdsClient:    adsClient,
		YTClient:     ytClient,
		VisionClient: visionClient,
		GeminiClient: geminiClient,
		SheetsClient: sheetsClient,
		HTTPClient:   httpClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create consumer server: %v", err)
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Consumer server error: %v", err)
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
