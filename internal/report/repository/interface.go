package repository

import (
	"context"
)

//go:generate mockery --name Repository
type Repository interface {
	// ReplacePlacements replaces the placement batch for one
	// (account_id, date, content_type) key in a single transaction.
	ReplacePlacements(ctx context.Context, opt ReplacePlacementsOptions) error
	// ExistingContentIDs returns which of the given ids already have a
	// metadata row.
	ExistingContentIDs(ctx context.Context, ids []string) (map[string]bool, error)
}
