package consumer

import (
	"fmt"

	"videxcl-srv/config"
	"videxcl-srv/internal/report"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Config holds the configuration for the report consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

// Consumer manages the Kafka consumer groups for the report domain. The
// accounts topic is consumed twice, once per content type, each with its own
// group so every stage sees every work unit.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	videoGroup   pkgKafka.IConsumer
	channelGroup pkgKafka.IConsumer
}

// New creates a new report consumer
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

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.videoGroup != nil {
		if err := c.videoGroup.Close(); err != nil {
			return fmt.Errorf("failed to close video report group: %w", err)
		}
	}
	if c.channelGroup != nil {
		if err := c.channelGroup.Close(); err != nil {
			return fmt.Errorf("failed to close channel report group: %w", err)
		}
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
