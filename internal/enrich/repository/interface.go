package repository

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ContentExists reports whether a metadata row exists for the id.
	ContentExists(ctx context.Context, contentID string) (bool, error)
	// CreateContent appends one metadata row.
	CreateContent(ctx context.Context, content model.ContentMetadata) error
}
