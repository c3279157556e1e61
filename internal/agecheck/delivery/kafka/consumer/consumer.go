package consumer

import (
	"context"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/model"
	pkgKafka "videxcl-srv/pkg/kafka"
)

// ConsumeEvaluationUnits starts consuming age evaluation batches
func (c *Consumer) ConsumeEvaluationUnits(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupAgeEvaluation)
	if err != nil {
		return err
	}
	c.evaluateGroup = group

	c.startGroup(ctx, group, model.TopicAgeEvaluation, &stageHandler{
		consumer: c,
		handle:   c.handleEvaluateMessage,
	})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicAgeEvaluation, model.GroupAgeEvaluation)
	return nil
}

func (c *Consumer) startGroup(ctx context.Context, group pkgKafka.IConsumer, topic string, handler sarama.ConsumerGroupHandler) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
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
}
