package consumer

import (
	"context"

	"videxcl-srv/internal/model"
	pkgKafka "videxcl-srv/pkg/kafka"
)

// ConsumeVideoMetadata starts consuming video content units
func (c *Consumer) ConsumeVideoMetadata(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupEnrichVideo)
	if err != nil {
		return err
	}
	c.videoGroup = group

	c.startGroup(ctx, group, model.TopicVideoMetadata)
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicVideoMetadata, model.GroupEnrichVideo)
	return nil
}

// ConsumeChannelMetadata starts consuming channel content units
func (c *Consumer) ConsumeChannelMetadata(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupEnrichChannel)
	if err != nil {
		return err
	}
	c.channelGroup = group

	c.startGroup(ctx, group, model.TopicChannelMetadata)
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicChannelMetadata, model.GroupEnrichChannel)
	return nil
}

func (c *Consumer) startGroup(ctx context.Context, group pkgKafka.IConsumer, topic string) {
	handler := &contentHandler{consumer: c}

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
