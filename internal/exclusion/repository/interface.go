package repository

import (
	"context"

	"videxcl-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ReplaceExclusions replaces the exclusion snapshot for one account in a
	// single transaction. Snapshots are read-only copies of external state,
	// replaced wholesale and never merged.
	ReplaceExclusions(ctx context.Context, opt ReplaceExclusionsOptions) error
	// ListNewExclusionCandidates returns distinct matched placements not yet
	// present in the account's snapshot of the given exclusion list.
	ListNewExclusionCandidates(ctx context.Context, opt ListNewCandidatesOptions) ([]model.ExclusionCandidate, error)
}
