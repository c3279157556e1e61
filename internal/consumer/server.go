package consumer

import (
	"context"
	"database/sql"

	"videxcl-srv/config"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/gemini"
	pkgHTTP "videxcl-srv/pkg/http"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/redis"
	"videxcl-srv/pkg/sheets"
	"videxcl-srv/pkg/vision"
	"videxcl-srv/pkg/ytapi"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig
	config      *config.Config

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	objectStore   minio.ObjectStore
	kafkaProducer pkgKafka.IProducer

	// Upstream API clients
	adsClient    adsapi.IAdsReporting
	ytClient     ytapi.IContentAPI
	visionClient vision.IVision
	geminiClient gemini.IGemini
	sheetsClient sheets.ISheets
	httpClient   pkgHTTP.IClient
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	AppConfig   *config.Config

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	ObjectStore   minio.ObjectStore
	KafkaProducer pkgKafka.IProducer

	// Upstream API clients
	AdsClient    adsapi.IAdsReporting
	YTClient     ytapi.IContentAPI
	VisionClient vision.IVision
	GeminiClient gemini.IGemini
	SheetsClient sheets.ISheets
	HTTPClient   pkgHTTP.IClient
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
