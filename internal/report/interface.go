package report

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}

// Producer publishes follow-on units discovered by an extraction run.
type Producer interface {
	PublishContentUnit(ctx context.Context, unit model.ContentUnit) error
	PublishThumbnailDispatch(ctx context.Context, dispatch model.ThumbnailDispatch) error
}
