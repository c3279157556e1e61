package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/enrich"
	"videxcl-srv/internal/model"
)

type contentHandler struct {
	consumer *Consumer
}

func (h *contentHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *contentHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *contentHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleContentMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "enrich.delivery.kafka.consumer.ConsumeClaim: Failed to process content unit: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleContentMessage unmarshals a content unit and delegates to the usecase.
func (c *Consumer) handleContentMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var unit model.ContentUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "enrich.delivery.kafka.consumer.handleContentMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if unit.ContentID == "" || unit.ContentType == "" {
		c.l.Warnf(ctx, "enrich.delivery.kafka.consumer.handleContentMessage: Missing required fields (skipping)")
		return nil
	}

	output, err := c.uc.Enrich(ctx, enrich.EnrichInput{Unit: unit})
	if err != nil {
		c.l.Errorf(ctx, "enrich.delivery.kafka.consumer.handleContentMessage: usecase Enrich failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	if output.Skipped {
		c.l.Debugf(ctx, "enrich.delivery.kafka.consumer.handleContentMessage: %s skipped", output.ContentID)
	}
	return nil
}
