package adsapi

import (
	"errors"
	"time"

	pkghttp "videxcl-srv/pkg/http"
)

// Placement content types understood by the reporting API.
const (
	PlacementTypeVideo   = "YOUTUBE_VIDEO"
	PlacementTypeChannel = "YOUTUBE_CHANNEL"
)

var (
	ErrBaseURLRequired = errors.New("adsapi: base URL is required")
)

// Config holds configuration for the ads reporting client.
type Config struct {
	BaseURL        string
	DeveloperToken string
}

// PlacementReportRequest scopes one placement report run.
type PlacementReportRequest struct {
	AccountID     string
	PlacementType string
	DateFrom      time.Time
	DateTo        time.Time
	// Filters is an AND-joined metric condition string built from the
	// config sheet, e.g. "metrics.impressions > 100 AND metrics.clicks > 10".
	Filters string
}

// PlacementRow is one row of the placement report.
type PlacementRow struct {
	ContentID   string  `json:"content_id"`
	DisplayName string  `json:"display_name"`
	TargetURL   string  `json:"target_url"`
	Impressions int64   `json:"impressions"`
	CostMicros  int64   `json:"cost_micros"`
	Conversions float64 `json:"conversions"`
	VideoViews  int64   `json:"video_views"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// ExclusionRow is one enabled exclusion criterion.
type ExclusionRow struct {
	ContentID     string `json:"content_id"`
	CriterionType string `json:"criterion_type"`
	SharedSetName string `json:"shared_set_name"`
}

// SharedSet is one negative-placement list of an account.
type SharedSet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddExclusionsRequest appends criteria to one shared set.
type AddExclusionsRequest struct {
	AccountID   string
	SharedSetID string
	VideoIDs    []string
	ChannelIDs  []string
}

// clientImpl implements IAdsReporting.
type clientImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

type searchPlacementsRequest struct {
	PlacementType string `json:"placement_type"`
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	Filters       string `json:"filters,omitempty"`
}

type searchPlacementsResponse struct {
	Rows []PlacementRow `json:"rows"`
}

type searchExclusionsResponse struct {
	Rows []ExclusionRow `json:"rows"`
}

type listSharedSetsResponse struct {
	SharedSets []SharedSet `json:"shared_sets"`
}

type mutateCriterion struct {
	Type      string `json:"type"`
	ContentID string `json:"content_id"`
}

type mutateCriteriaRequest struct {
	SharedSetID string            `json:"shared_set_id"`
	Criteria    []mutateCriterion `json:"criteria"`
}

type mutateCriteriaResponse struct {
	Results int `json:"results"`
}
