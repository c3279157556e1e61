package adsapi

import "context"

// IAdsReporting defines the interface for the ads reporting API.
// Implementations are safe for concurrent use.
type IAdsReporting interface {
	// SearchPlacements runs the detail placement report for one account.
	SearchPlacements(ctx context.Context, req PlacementReportRequest) ([]PlacementRow, error)
	// SearchExclusions returns the enabled shared-criterion exclusions for one account.
	SearchExclusions(ctx context.Context, accountID string) ([]ExclusionRow, error)
	// ListSharedSets returns the enabled negative-placement shared sets of one account.
	ListSharedSets(ctx context.Context, accountID string) ([]SharedSet, error)
	// AddExclusions appends video/channel criteria to a shared set and
	// returns how many criteria the API accepted.
	AddExclusions(ctx context.Context, req AddExclusionsRequest) (int, error)
}

// NewAdsReporting creates a new ads reporting client. Returns the interface.
func NewAdsReporting(cfg Config) (IAdsReporting, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return newClientImpl(cfg), nil
}
