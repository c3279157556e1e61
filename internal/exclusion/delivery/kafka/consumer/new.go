package consumer

import (
	"fmt"

	"videxcl-srv/config"
	"videxcl-srv/internal/exclusion"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Config holds the configuration for the exclusion consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     exclusion.UseCase
}

// Consumer manages the Kafka consumer group for the exclusion domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          exclusion.UseCase

	group pkgKafka.IConsumer
}

// New creates a new exclusion consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.group != nil {
		if err := c.group.Close(); err != nil {
			return fmt.Errorf("failed to close exclusions group: %w", err)
		}
	}
	return nil
}
