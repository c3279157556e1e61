package agecheck

import "videxcl-srv/internal/model"

// DispatchInput is one evaluation dispatch run.
type DispatchInput struct {
	RunID   string
	SheetID string
	// Limit bounds how many videos the run selects. Zero means the
	// configured default applies.
	Limit int
}

// DispatchOutput reports the result of a dispatch run.
type DispatchOutput struct {
	RunID      string
	Candidates int
	Batches    int
	Published  int
	// Disabled is true when the sheet gate turned the run off; nothing was
	// selected or published.
	Disabled bool
}

// EvaluateInput is one consumed evaluation batch.
type EvaluateInput struct {
	Unit model.AgeEvaluationUnit
}

// EvaluateOutput reports the result of one batch evaluation.
type EvaluateOutput struct {
	Videos   int
	Verdicts int
	// Failed counts videos whose verdicts could not be persisted.
	Failed int
}
