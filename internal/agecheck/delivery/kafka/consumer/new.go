package consumer

import (
	"fmt"

	"videxcl-srv/config"
	"videxcl-srv/internal/agecheck"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Config holds the configuration for the agecheck consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     agecheck.UseCase
}

// Consumer manages the Kafka consumer group of the age evaluation stage.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          agecheck.UseCase

	evaluateGroup pkgKafka.IConsumer
}

// New creates a new agecheck consumer
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
	if c.evaluateGroup == nil {
		return nil
	}
	if err := c.evaluateGroup.Close(); err != nil {
		return fmt.Errorf("failed to close evaluate group: %w", err)
	}
	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}
	return group, nil
}
