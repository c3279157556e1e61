package adsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "videxcl-srv/pkg/http"
)

const dateFormat = "2006-01-02"

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		config:     cfg,
		httpClient: pkghttp.NewClient(pkghttp.DefaultConfig()),
	}
}

func (c *clientImpl) headers() map[string]string {
	h := map[string]string{}
	if c.config.DeveloperToken != "" {
		h["developer-token"] = c.config.DeveloperToken
	}
	return h
}

// SearchPlacements runs the placement report scoped to one account and
// placement type. The date window and filter string go into the request body.
func (c *clientImpl) SearchPlacements(ctx context.Context, req PlacementReportRequest) ([]PlacementRow, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s/placements:search", c.config.BaseURL, req.AccountID)

	body, status, err := c.httpClient.Post(ctx, endpoint, searchPlacementsRequest{
		PlacementType: req.PlacementType,
		DateFrom:      req.DateFrom.Format(dateFormat),
		DateTo:        req.DateTo.Format(dateFormat),
		Filters:       req.Filters,
	}, c.headers())
	if err != nil {
		return nil, fmt.Errorf("adsapi: placement search for %s failed: %w", req.AccountID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("adsapi: placement search for %s returned status %d", req.AccountID, status)
	}

	var resp searchPlacementsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("adsapi: failed to unmarshal placement report: %w", err)
	}
	return resp.Rows, nil
}

// SearchExclusions returns the enabled video/channel exclusion criteria for
// the account across all enabled shared sets.
func (c *clientImpl) SearchExclusions(ctx context.Context, accountID string) ([]ExclusionRow, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s/exclusions:search", c.config.BaseURL, accountID)

	body, status, err := c.httpClient.Post(ctx, endpoint, struct{}{}, c.headers())
	if err != nil {
		return nil, fmt.Errorf("adsapi: exclusion search for %s failed: %w", accountID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("adsapi: exclusion search for %s returned status %d", accountID, status)
	}

	var resp searchExclusionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("adsapi: failed to unmarshal exclusions: %w", err)
	}
	return resp.Rows, nil
}

// ListSharedSets returns the enabled negative-placement shared sets of the
// account, name and id. The id is what the mutate endpoint wants.
func (c *clientImpl) ListSharedSets(ctx context.Context, accountID string) ([]SharedSet, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s/sharedSets:search", c.config.BaseURL, accountID)

	body, status, err := c.httpClient.Post(ctx, endpoint, struct{}{}, c.headers())
	if err != nil {
		return nil, fmt.Errorf("adsapi: shared set search for %s failed: %w", accountID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("adsapi: shared set search for %s returned status %d", accountID, status)
	}

	var resp listSharedSetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("adsapi: failed to unmarshal shared sets: %w", err)
	}
	return resp.SharedSets, nil
}

// AddExclusions appends video and channel criteria to one shared set in a
// single mutate call.
func (c *clientImpl) AddExclusions(ctx context.Context, req AddExclusionsRequest) (int, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s/sharedCriteria:mutate", c.config.BaseURL, req.AccountID)

	criteria := make([]mutateCriterion, 0, len(req.VideoIDs)+len(req.ChannelIDs))
	for _, id := range req.VideoIDs {
		criteria = append(criteria, mutateCriterion{Type: PlacementTypeVideo, ContentID: id})
	}
	for _, id := range req.ChannelIDs {
		criteria = append(criteria, mutateCriterion{Type: PlacementTypeChannel, ContentID: id})
	}

	body, status, err := c.httpClient.Post(ctx, endpoint, mutateCriteriaRequest{
		SharedSetID: req.SharedSetID,
		Criteria:    criteria,
	}, c.headers())
	if err != nil {
		return 0, fmt.Errorf("adsapi: criteria mutate for %s failed: %w", req.AccountID, err)
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("adsapi: criteria mutate for %s returned status %d", req.AccountID, status)
	}

	var resp mutateCriteriaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("adsapi: failed to unmarshal mutate result: %w", err)
	}
	return resp.Results, nil
}
