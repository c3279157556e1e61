package consumer

import (
	"fmt"

	"videxcl-srv/config"
	"videxcl-srv/internal/enrich"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Config holds the configuration for the enrich consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     enrich.UseCase
}

// Consumer manages the Kafka consumer groups for the enrich domain, one per
// metadata topic.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          enrich.UseCase

	videoGroup   pkgKafka.IConsumer
	channelGroup pkgKafka.IConsumer
}

// New creates a new enrich consumer
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
			return fmt.Errorf("failed to close video enrich group: %w", err)
		}
	}
	if c.channelGroup != nil {
		if err := c.channelGroup.Close(); err != nil {
			return fmt.Errorf("failed to close channel enrich group: %w", err)
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
