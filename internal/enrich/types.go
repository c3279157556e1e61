package enrich

import "videxcl-srv/internal/model"

// EnrichInput is one enrichment unit.
type EnrichInput struct {
	Unit model.ContentUnit
}

// EnrichOutput reports the result of an enrichment.
type EnrichOutput struct {
	ContentID string
	// Skipped is true when the row already existed (or another worker held
	// the claim) and no external call was made.
	Skipped bool
}
