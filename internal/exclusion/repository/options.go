package repository

import "videxcl-srv/internal/model"

// ReplaceExclusionsOptions keys one snapshot replace.
type ReplaceExclusionsOptions struct {
	AccountID string
	Entries   []model.ExclusionEntry
}

// ListNewCandidatesOptions keys one candidate query.
type ListNewCandidatesOptions struct {
	AccountID     string
	ExclusionList string
}
