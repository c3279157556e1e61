package thumbnail

import "videxcl-srv/internal/model"

// DispatchInput is one dispatch run.
type DispatchInput struct {
	Dispatch model.ThumbnailDispatch
}

// DispatchOutput reports the result of a dispatch run.
type DispatchOutput struct {
	Candidates int // unprocessed video ids found (bounded by the run limit)
	Dispatched int // process units successfully published
}

// ProcessInput is one video classification unit.
type ProcessInput struct {
	Unit model.ThumbnailUnit
}

// ProcessOutput reports the result of classifying one video.
type ProcessOutput struct {
	VideoID     string
	Thumbnails  int // thumbnails resolved and downloaded
	Annotations int // annotation rows appended
	CropUnits   int // cropout units published
	Failed      int // thumbnails whose classification failed
	Skipped     bool
}

// CropInput is one cropout unit.
type CropInput struct {
	Unit model.CropUnit
}

// CropOutput reports the stored cropout.
type CropOutput struct {
	VideoID    string
	ObjectName string
}
