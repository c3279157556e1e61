package http

import (
	"github.com/google/uuid"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
)

// dispatchReq - Request body for Dispatch
type dispatchReq struct {
	Limit       int  `json:"limit"`
	CropObjects bool `json:"crop_objects"`
}

// toInput - Convert to UseCase input
func (r dispatchReq) toInput() thumbnail.DispatchInput {
	return thumbnail.DispatchInput{
		Dispatch: model.ThumbnailDispatch{
			RunID:       uuid.NewString(),
			Limit:       r.Limit,
			CropObjects: r.CropObjects,
		},
	}
}

// dispatchResp - Response for Dispatch
type dispatchResp struct {
	Candidates int `json:"candidates"`
	Dispatched int `json:"dispatched"`
}

// newDispatchResp - Convert UseCase output to response
func (h *handler) newDispatchResp(output thumbnail.DispatchOutput) dispatchResp {
	return dispatchResp{
		Candidates: output.Candidates,
		Dispatched: output.Dispatched,
	}
}
