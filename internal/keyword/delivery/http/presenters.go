package http

import (
	"videxcl-srv/internal/keyword"
)

// runReq - Request body for Run
type runReq struct {
	SheetID string `json:"sheet_id" binding:"required"`
}

// toInput - Convert to UseCase input
func (r runReq) toInput() keyword.RunInput {
	return keyword.RunInput{
		SheetID: r.SheetID,
	}
}

// runResp - Response for Run
type runResp struct {
	Keywords int `json:"keywords"`
	Scanned  int `json:"scanned"`
	Matches  int `json:"matches"`
}

// newRunResp - Convert UseCase output to response
func (h *handler) newRunResp(output keyword.RunOutput) runResp {
	return runResp{
		Keywords: output.Keywords,
		Scanned:  output.Scanned,
		Matches:  output.Matches,
	}
}
