package consumer

import (
	"fmt"

	"videxcl-srv/config"
	"videxcl-srv/internal/thumbnail"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Config holds the configuration for the thumbnail consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     thumbnail.UseCase
}

// Consumer manages the Kafka consumer groups of the thumbnail pipeline, one
// per stage so the stages scale independently.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          thumbnail.UseCase

	dispatchGroup pkgKafka.IConsumer
	processGroup  pkgKafka.IConsumer
	cropGroup     pkgKafka.IConsumer
}

// New creates a new thumbnail consumer
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
	for name, group := range map[string]pkgKafka.IConsumer{
		"dispatch": c.dispatchGroup,
		"process":  c.processGroup,
		"crop":     c.cropGroup,
	} {
		if group == nil {
			continue
		}
		if err := group.Close(); err != nil {
			return fmt.Errorf("failed to close %s group: %w", name, err)
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
