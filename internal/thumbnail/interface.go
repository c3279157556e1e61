package thumbnail

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch selects not-yet-annotated video ids and fans them out for
	// classification.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
	// Process classifies all thumbnails of one video.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Crop cuts one detected region out of a thumbnail and stores it.
	Crop(ctx context.Context, input CropInput) (CropOutput, error)
}

// Producer publishes thumbnail pipeline units.
type Producer interface {
	PublishProcessUnit(ctx context.Context, unit model.ThumbnailUnit) error
	PublishCropUnit(ctx context.Context, unit model.CropUnit) error
}
