package repository

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListContent returns the scannable fields of every content record.
	ListContent(ctx context.Context) ([]model.ContentMetadata, error)
	// ReplaceMatches swaps the full match materialization in one transaction.
	ReplaceMatches(ctx context.Context, matches []model.KeywordMatch) error
}
