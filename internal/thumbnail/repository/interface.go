package repository

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListUnprocessedVideoIDs returns distinct video ids present in the
	// placement store with no annotation rows yet, bounded by limit.
	ListUnprocessedVideoIDs(ctx context.Context, limit int) ([]string, error)
	// AnnotationsExist reports whether any annotation row exists for the video.
	AnnotationsExist(ctx context.Context, videoID string) (bool, error)
	// CreateAnnotations appends annotation rows.
	CreateAnnotations(ctx context.Context, annotations []model.ThumbnailAnnotation) error
	// CreateCropout appends one cropout reference row.
	CreateCropout(ctx context.Context, cropout model.ThumbnailCropout) error
}
