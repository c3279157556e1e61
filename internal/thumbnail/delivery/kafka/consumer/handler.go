package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
)

// handleDispatchMessage unmarshals a dispatch trigger and delegates to the
// usecase (no business logic here).
func (c *Consumer) handleDispatchMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var dispatch model.ThumbnailDispatch
	if err := json.Unmarshal(msg.Value, &dispatch); err != nil {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleDispatchMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	output, err := c.uc.Dispatch(ctx, thumbnail.DispatchInput{Dispatch: dispatch})
	if err != nil {
		c.l.Errorf(ctx, "thumbnail.delivery.kafka.consumer.handleDispatchMessage: usecase Dispatch failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "thumbnail.delivery.kafka.consumer.handleDispatchMessage: run %s: candidates=%d dispatched=%d",
		dispatch.RunID, output.Candidates, output.Dispatched)
	return nil
}

// handleProcessMessage unmarshals a per-video unit and delegates to the usecase.
func (c *Consumer) handleProcessMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var unit model.ThumbnailUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleProcessMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if unit.VideoID == "" {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleProcessMessage: Missing video id (skipping)")
		return nil
	}

	output, err := c.uc.Process(ctx, thumbnail.ProcessInput{Unit: unit})
	if err != nil {
		c.l.Errorf(ctx, "thumbnail.delivery.kafka.consumer.handleProcessMessage: usecase Process failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "thumbnail.delivery.kafka.consumer.handleProcessMessage: video %s: annotations=%d cropouts=%d skipped=%v",
		output.VideoID, output.Annotations, output.CropUnits, output.Skipped)
	return nil
}

// handleCropMessage unmarshals a crop unit and delegates to the usecase. Units
// that can never succeed are acknowledged instead of retried.
func (c *Consumer) handleCropMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var unit model.CropUnit
	if err := json.Unmarshal(msg.Value, &unit); err != nil {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleCropMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if unit.VideoID == "" || unit.ThumbnailURL == "" {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleCropMessage: Missing video id or thumbnail url (skipping)")
		return nil
	}

	output, err := c.uc.Crop(ctx, thumbnail.CropInput{Unit: unit})
	if errors.Is(err, thumbnail.ErrDecodeFailed) || errors.Is(err, thumbnail.ErrEmptyCropRegion) {
		c.l.Warnf(ctx, "thumbnail.delivery.kafka.consumer.handleCropMessage: Unusable crop unit for %s (skipping): %v",
			unit.VideoID, err)
		return nil
	}
	if err != nil {
		c.l.Errorf(ctx, "thumbnail.delivery.kafka.consumer.handleCropMessage: usecase Crop failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "thumbnail.delivery.kafka.consumer.handleCropMessage: stored %s", output.ObjectName)
	return nil
}
