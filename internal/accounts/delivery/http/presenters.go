package http

import (
	"videxcl-srv/internal/accounts"
)

// runReq - Request body for Run
type runReq struct {
	SheetID string `json:"sheet_id" binding:"required"`
}

// toInput - Convert to UseCase input
func (r runReq) toInput() accounts.SelectInput {
	return accounts.SelectInput{
		SheetID: r.SheetID,
	}
}

// runResp - Response for Run
type runResp struct {
	RunID    string `json:"run_id"`
	Accounts int    `json:"accounts"`
	Emitted  int    `json:"emitted"`
	Failed   int    `json:"failed"`
}

// newRunResp - Convert UseCase output to response
func (h *handler) newRunResp(output accounts.SelectOutput) runResp {
	return runResp{
		RunID:    output.RunID,
		Accounts: output.Accounts,
		Emitted:  output.Emitted,
		Failed:   output.Failed,
	}
}
