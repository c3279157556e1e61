package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

// stageHandler adapts one pipeline stage to a sarama consumer group.
type stageHandler struct {
	consumer *Consumer
	handle   func(msg *sarama.ConsumerMessage) error
}

func (h *stageHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *stageHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *stageHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.handle(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "thumbnail.delivery.kafka.consumer.ConsumeClaim: Failed to process unit: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
