package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		config:        cfg.AppConfig,
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		objectStore:   cfg.ObjectStore,
		kafkaProducer: cfg.KafkaProducer,
		adsClient:     cfg.AdsClient,
		ytClient:      cfg.YTClient,
		visionClient:  cfg.VisionClient,
		geminiClient:  cfg.GeminiClient,
		sheetsClient:  cfg.SheetsClient,
		httpClient:    cfg.HTTPClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.config == nil {
		return fmt.Errorf("app config is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.objectStore == nil {
		return fmt.Errorf("object store is required")
	}
	if srv.kafkaProducer == nil {
		return fmt.Errorf("kafka producer is required")
	}

	// Upstream API clients
	if srv.adsClient == nil {
		return fmt.Errorf("ads client is required")
	}
	if srv.ytClient == nil {
		return fmt.Errorf("content api client is required")
	}
	if srv.visionClient == nil {
		return fmt.Errorf("vision client is required")
	}
	if srv.geminiClient == nil {
		return fmt.Errorf("gemini client is required")
	}
	if srv.sheetsClient == nil {
		return fmt.Errorf("sheets client is required")
	}
	if srv.httpClient == nil {
		return fmt.Errorf("http client is required")
	}

	return nil
}
