package model

import "time"

// ExclusionEntry is one externally sourced exclusion row. The set for an
// account is a read-only snapshot, replaced per run and never merged.
type ExclusionEntry struct {
	AccountID     string    `json:"account_id"`
	ContentID     string    `json:"content_id"`
	ContentType   string    `json:"content_type"`
	ExclusionList string    `json:"exclusion_list"`
	ExcludedAt    time.Time `json:"excluded_at"`
}

// ExclusionCandidate is one matched placement not yet on the account's
// exclusion list.
type ExclusionCandidate struct {
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
}
