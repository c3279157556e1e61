package model

import "time"

// PlacementRecord is one row of an ads placement report batch. Batches are
// keyed by (account_id, date(observed_at), content_type) and a re-run for the
// same key replaces the prior batch wholesale.
type PlacementRecord struct {
	AccountID   string    `json:"account_id"`
	ContentID   string    `json:"content_id"`
	ContentType string    `json:"content_type"`
	DisplayName string    `json:"display_name"`
	TargetURL   string    `json:"target_url"`
	Impressions int64     `json:"impressions"`
	CostMicros  int64     `json:"cost_micros"`
	Conversions float64   `json:"conversions"`
	VideoViews  int64     `json:"video_views"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
	ObservedAt  time.Time `json:"observed_at"`
}
