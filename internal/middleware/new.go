package middleware

import (
	"videxcl-srv/config"
	"videxcl-srv/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	serviceKeys map[string]string
}

func New(l log.Logger, cfg config.InternalConfig) Middleware {
	return Middleware{
		l:           l,
		internalKey: cfg.InternalKey,
		serviceKeys: cfg.ServiceKeys,
	}
}
