package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"videxcl-srv/internal/model"
)

// PublishWorkUnit publishes one account work unit to the accounts topic.
// Keyed by account id so re-runs for the same account land on one partition.
func (p *implProducer) PublishWorkUnit(ctx context.Context, unit model.AccountWorkUnit) error {
	body, err := json.Marshal(unit)
	if err != nil {
		return fmt.Errorf("failed to marshal work unit: %w", err)
	}

	if err := p.producer.Publish(model.TopicAccounts, []byte(unit.AccountID), body); err != nil {
		return fmt.Errorf("failed to publish work unit: %w", err)
	}

	p.l.Debugf(ctx, "Published work unit for account %s (run %s)", unit.AccountID, unit.RunID)
	return nil
}
