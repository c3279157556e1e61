package consumer

import (
	"context"

	"videxcl-srv/internal/model"
	pkgKafka "videxcl-srv/pkg/kafka"
)

// ConsumeVideoReports starts consuming account work units for video reports
func (c *Consumer) ConsumeVideoReports(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupReportVideo)
	if err != nil {
		return err
	}
	c.videoGroup = group

	c.startGroup(ctx, group, &accountHandler{consumer: c, contentType: model.ContentTypeVideo})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicAccounts, model.GroupReportVideo)
	return nil
}

// ConsumeChannelReports starts consuming account work units for channel reports
func (c *Consumer) ConsumeChannelReports(ctx context.Context) error {
	group, err := c.createConsumerGroup(model.GroupReportChannel)
	if err != nil {
		return err
	}
	c.channelGroup = group

	c.startGroup(ctx, group, &accountHandler{consumer: c, contentType: model.ContentTypeChannel})
	c.l.Infof(ctx, "Consuming %s (group %s)", model.TopicAccounts, model.GroupReportChannel)
	return nil
}

func (c *Consumer) startGroup(ctx context.Context, group pkgKafka.IConsumer, handler *accountHandler) {
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
}
