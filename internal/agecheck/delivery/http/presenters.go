package http

import (
	"github.com/google/uuid"

	"videxcl-srv/internal/agecheck"
)

// runReq - Request body for Run
type runReq struct {
	SheetID string `json:"sheet_id" binding:"required"`
	Limit   int    `json:"limit"`
}

// toInput - Convert to UseCase input
func (r runReq) toInput() agecheck.DispatchInput {
	return agecheck.DispatchInput{
		RunID:   uuid.NewString(),
		SheetID: r.SheetID,
		Limit:   r.Limit,
	}
}

// runResp - Response for Run
type runResp struct {
	RunID      string `json:"run_id"`
	Candidates int    `json:"candidates"`
	Batches    int    `json:"batches"`
	Published  int    `json:"published"`
	Disabled   bool   `json:"disabled"`
}

// newRunResp - Convert UseCase output to response
func (h *handler) newRunResp(output agecheck.DispatchOutput) runResp {
	return runResp{
		RunID:      output.RunID,
		Candidates: output.Candidates,
		Batches:    output.Batches,
		Published:  output.Published,
		Disabled:   output.Disabled,
	}
}
