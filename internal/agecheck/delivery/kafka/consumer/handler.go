package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/agecheck"
	"videxcl-srv/internal/model"
)

// handleEvaluateMessage unmarshals an evaluation batch and delegates to the
// usecase (no business logic here).
func (c *Consumer) handleEvaluateMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var unit model.AgeEvaluationUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "agecheck.delivery.kafka.consumer.handleEvaluateMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if len(unit.VideoIDs) == 0 {
		c.l.Warnf(ctx, "agecheck.delivery.kafka.consumer.handleEvaluateMessage: Empty batch (skipping)")
		return nil
	}
	if unit.Prompt == "" {
		c.l.Warnf(ctx, "agecheck.delivery.kafka.consumer.handleEvaluateMessage: Missing prompt (skipping)")
		return nil
	}

	output, err := c.uc.Evaluate(ctx, agecheck.EvaluateInput{Unit: unit})
	if err != nil {
		c.l.Errorf(ctx, "agecheck.delivery.kafka.consumer.handleEvaluateMessage: usecase Evaluate failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "agecheck.delivery.kafka.consumer.handleEvaluateMessage: run %s batch %d/%d: videos=%d verdicts=%d",
		unit.RunID, unit.BatchPart, unit.TotalBatchParts, output.Videos, output.Verdicts)
	return nil
}
