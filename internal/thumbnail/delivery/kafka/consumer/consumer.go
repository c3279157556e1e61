package consumer

import (
	"context"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/model"
	pkgKafka "videxcl-srv/pkg/kafka"
)

// ConsumeDispatches starts consuming dispatch triggers
func (c *Consumer) ConsumeDispatches(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupThumbnailDispatch)
	if err != nil {
		return err
	}
	c.dispatchGroup = group

	c.startGroup(ctx, group, model.TopicThumbnailDispatch, &stageHandler{
		consumer: c,
		handle:   c.handleDispatchMessage,
	})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicThumbnailDispatch, model.GroupThumbnailDispatch)
	return nil
}

// ConsumeProcessUnits starts consuming per-video classification units
func (c *Consumer) ConsumeProcessUnits(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupThumbnailProcess)
	if err != nil {
		return err
	}
	c.processGroup = group

	c.startGroup(ctx, group, model.TopicThumbnailProcess, &stageHandler{
		consumer: c,
		handle:   c.handleProcessMessage,
	})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicThumbnailProcess, model.GroupThumbnailProcess)
	return nil
}

// ConsumeCropUnits starts consuming cropout units
func (c *Consumer) ConsumeCropUnits(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupThumbnailCrop)
	if err != nil {
		return err
	}
	c.cropGroup = group

	c.startGroup(ctx, group, model.TopicThumbnailCrop, &stageHandler{
		consumer: c,
		handle:   c.handleCropMessage,
	})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicThumbnailCrop, model.GroupThumbnailCrop)
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
