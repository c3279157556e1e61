package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"videxcl-srv/config"
	configKafka "videxcl-srv/config/kafka"
	configMinio "videxcl-srv/config/minio"
	configPostgre "videxcl-srv/config/postgre"
	configRedis "videxcl-srv/config/redis"
	"videxcl-srv/internal/httpserver"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/gemini"
	pkgHTTP "videxcl-srv/pkg/http"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/sheets"
	"videxcl-srv/pkg/vision"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO
	objectStore, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MinIO: %v", err)
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 6. Initialize Kafka producer
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Kafka producer: %v", err)
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer initialized")

	// 7. Initialize upstream API clients
	httpClient := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   30 * time.Second,
		Retries:   3,
		RetryWait: time.Second,
	})

	sheetsClient, err := sheets.NewSheets(sheets.Config{
		BaseURL: cfg.Sheets.BaseURL,
		APIKey:  cfg.Sheets.APIKey,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize sheets client: %v", err)
	}

	visionClient, err := vision.NewVision(vision.Config{
		BaseURL: cfg.Vision.BaseURL,
		APIKey:  cfg.Vision.APIKey,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize vision client: %v", err)
	}

	adsClient, err := adsapi.NewAdsReporting(adsapi.Config{
		BaseURL:        cfg.AdsAPI.BaseURL,
		DeveloperToken: cfg.AdsAPI.DeveloperToken,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize ads reporting client: %v", err)
	}

	geminiClient, err := gemini.NewGemini(gemini.Config{
		BaseURL: cfg.Gemini.BaseURL,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize gemini client: %v", err)
	}

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		ObjectStore: objectStore,
		Producer:    kafkaProducer,

		SheetsClient: sheetsClient,
		VisionClient: visionClient,
		AdsClient:    adsClient,
		GeminiClient: geminiClient,
		HTTPClient:   httpClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}
}
