package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"videxcl-srv/internal/model"
)

// PublishContentUnit publishes one new content id to its metadata topic.
func (p *implProducer) PublishContentUnit(ctx context.Context, unit model.ContentUnit) error {
	var topic string
	switch unit.ContentType {
	case model.ContentTypeVideo:
		topic = model.TopicVideoMetadata
	case model.ContentTypeChannel:
		topic = model.TopicChannelMetadata
	default:
		return fmt.Errorf("unknown content type %q", unit.ContentType)
	}

	body, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("failed to marshal content unit: %w", err)
	}

	if err := p.producer.Publish(topic, []byte(unit.ContentID), body); err != nil {
		return fmt.Errorf("failed to publish content unit: %w", err)
	}

	p.l.Debugf(ctx, "Published content unit %s to %s", unit.ContentID, topic)
	return nil
}

// PublishThumbnailDispatch publishes a thumbnail dispatch trigger.
func (p *implProducer) PublishThumbnailDispatch(ctx context.Context, dispatch model.ThumbnailDispatch) error {
	body, err := json.Marshal(dispatch)
	if err != nil {
		return fmt.Errorf("failed to marshal thumbnail dispatch: %w", err)
	}

	if err := p.producer.Publish(model.TopicThumbnailDispatch, []byte(dispatch.RunID), body); err != nil {
		return fmt.Errorf("failed to publish thumbnail dispatch: %w", err)
	}

	p.l.Infof(ctx, "Published thumbnail dispatch (run %s)", dispatch.RunID)
	return nil
}
