package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/report"
)

// handleAccountMessage unmarshals a work unit and delegates to the usecase
// (no business logic here).
func (c *Consumer) handleAccountMessage(msg *sarama.ConsumerMessage, contentType string) error {
	ctx := context.Background()

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleAccountMessage: Processing %s unit from partition %d, offset %d",
		contentType, msg.Partition, msg.Offset)

	var unit model.AccountWorkUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleAccountMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if unit.AccountID == "" {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleAccountMessage: Missing account id (skipping)")
		return nil
	}

	output, err := c.uc.Extract(ctx, report.ExtractInput{
		Unit:        unit,
		ContentType: contentType,
	})
	if err != nil {
		c.l.Errorf(ctx, "report.delivery.kafka.consumer.handleAccountMessage: usecase Extract failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleAccountMessage: account %s: rows=%d new=%d dispatched=%v",
		output.AccountID, output.Rows, output.NewContent, output.Dispatched)
	return nil
}
