package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/exclusion"
	"videxcl-srv/internal/model"
)

type accountHandler struct {
	consumer *Consumer
}

func (h *accountHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *accountHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *accountHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleAccountMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "exclusion.delivery.kafka.consumer.ConsumeClaim: Failed to process work unit: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleAccountMessage unmarshals a work unit and delegates to the usecase.
func (c *Consumer) handleAccountMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var unit model.AccountWorkUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "exclusion.delivery.kafka.consumer.handleAccountMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if unit.AccountID == "" {
		c.l.Warnf(ctx, "exclusion.delivery.kafka.consumer.handleAccountMessage: Missing account id (skipping)")
		return nil
	}

	output, err := c.uc.Snapshot(ctx, exclusion.SnapshotInput{Unit: unit})
	if err != nil {
		c.l.Errorf(ctx, "exclusion.delivery.kafka.consumer.handleAccountMessage: usecase Snapshot failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "exclusion.delivery.kafka.consumer.handleAccountMessage: account %s: entries=%d",
		output.AccountID, output.Entries)
	return nil
}
