package http

import (
	"videxcl-srv/internal/exclusion"
)

// applyReq - Request body for Apply
type applyReq struct {
	AccountID     string `json:"account_id" binding:"required"`
	SharedSetName string `json:"shared_set_name" binding:"required"`
}

// toInput - Convert to UseCase input
func (r applyReq) toInput() exclusion.ApplyInput {
	return exclusion.ApplyInput{
		AccountID:     r.AccountID,
		SharedSetName: r.SharedSetName,
	}
}

// applyResp - Response for Apply
type applyResp struct {
	AccountID string `json:"account_id"`
	Videos    int    `json:"videos"`
	Channels  int    `json:"channels"`
	Uploaded  int    `json:"uploaded"`
	Entries   int    `json:"entries"`
}

// newApplyResp - Convert UseCase output to response
func (h *handler) newApplyResp(output exclusion.ApplyOutput) applyResp {
	return applyResp{
		AccountID: output.AccountID,
		Videos:    output.Videos,
		Channels:  output.Channels,
		Uploaded:  output.Uploaded,
		Entries:   output.Entries,
	}
}
