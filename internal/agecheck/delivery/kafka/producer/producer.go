package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"videxcl-srv/internal/model"
)

// PublishEvaluationUnit publishes one batch to the age evaluation topic.
func (p *implProducer) PublishEvaluationUnit(ctx context.Context, unit model.AgeEvaluationUnit) error {
	body, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation unit: %w", err)
	}

	if err := p.producer.Publish(model.TopicAgeEvaluation, []byte(unit.RunID), body); err != nil {
		return fmt.Errorf("failed to publish evaluation unit: %w", err)
	}

	p.l.Debugf(ctx, "Published evaluation unit %d/%d of run %s to %s",
		unit.BatchPart, unit.TotalBatchParts, unit.RunID, model.TopicAgeEvaluation)
	return nil
}
