package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"videxcl-srv/internal/model"
)

// PublishProcessUnit publishes one video to the classification topic.
func (p *implProducer) PublishProcessUnit(ctx context.Context, unit model.ThumbnailUnit) error {
	body, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("failed to marshal process unit: %w", err)
	}

	if err := p.producer.Publish(model.TopicThumbnailProcess, []byte(unit.VideoID), body); err != nil {
		return fmt.Errorf("failed to publish process unit: %w", err)
	}

	p.l.Debugf(ctx, "Published process unit %s to %s", unit.VideoID, model.TopicThumbnailProcess)
	return nil
}

// PublishCropUnit publishes one detected region to the crop topic.
func (p *implProducer) PublishCropUnit(ctx context.Context, unit model.CropUnit) error {
	body, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("failed to marshal crop unit: %w", err)
	}

	if err := p.producer.Publish(model.TopicThumbnailCrop, []byte(unit.VideoID), body); err != nil {
		return fmt.Errorf("failed to publish crop unit: %w", err)
	}

	p.l.Debugf(ctx, "Published crop unit %s/%s to %s", unit.VideoID, unit.Label, model.TopicThumbnailCrop)
	return nil
}
