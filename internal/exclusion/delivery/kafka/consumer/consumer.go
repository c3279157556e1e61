package consumer

import (
	"context"
	"fmt"

	"videxcl-srv/internal/model"
	pkgKafka "videxcl-srv/pkg/kafka"
)

// ConsumeAccountUnits starts consuming account work units for exclusion snapshots
func (c *Consumer) ConsumeAccountUnits(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: model.GroupExclusions,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer group %s: %w", model.GroupExclusions, err)
	}
	c.group = group

	handler := &accountHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{model.TopicAccounts}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicAccounts, model.GroupExclusions)
	return nil
}
