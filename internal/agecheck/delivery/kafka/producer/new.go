package producer

import (
	"videxcl-srv/internal/agecheck"
	pkgKafka "videxcl-srv/pkg/kafka"
	"videxcl-srv/pkg/log"
)

// Producer interface for agecheck domain
type Producer interface {
	agecheck.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new agecheck producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
