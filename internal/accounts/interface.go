package accounts

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Select(ctx context.Context, input SelectInput) (SelectOutput, error)
}

// Producer publishes account fan-out units.
type Producer interface {
	PublishWorkUnit(ctx context.Context, unit model.AccountWorkUnit) error
}
