package producer

import (
	"videxcl-srv/internal/accounts"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Producer interface for accounts domain
type Producer interface {
	accounts.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new accounts producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
