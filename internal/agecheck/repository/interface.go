package repository

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListUnevaluatedVideoIDs returns distinct video ids present in the
	// placement store with no verdict rows yet, bounded by limit.
	ListUnevaluatedVideoIDs(ctx context.Context, limit int) ([]string, error)
	// CreateVerdicts appends verdict rows.
	CreateVerdicts(ctx context.Context, verdicts []model.AgeVerdict) error
}
