package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type accountHandler struct {
	consumer    *Consumer
	contentType string
}

func (h *accountHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *accountHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *accountHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleAccountMessage(msg, h.contentType); err != nil {
			h.consumer.l.Errorf(context.Background(), "report.delivery.kafka.consumer.ConsumeClaim: Failed to process work unit: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
