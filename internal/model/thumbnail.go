package model

import "time"

// ThumbnailDispatch is the message that kicks off a thumbnail run. A zero
// Limit means the configured per-run limit applies.
type ThumbnailDispatch struct {
	RunID       string `json:"run_id"`
	Limit       int    `json:"limit,omitempty"`
	CropObjects bool   `json:"crop_objects"`
}

// ThumbnailUnit is one video to classify.
type ThumbnailUnit struct {
	RunID       string `json:"run_id"`
	VideoID     string `json:"video_id"`
	CropObjects bool   `json:"crop_objects"`
}

// CropUnit is one detected region to cut out of a thumbnail.
type CropUnit struct {
	RunID        string  `json:"run_id"`
	VideoID      string  `json:"video_id"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	TopLeftX     float64 `json:"top_left_x"`
	TopLeftY     float64 `json:"top_left_y"`
	BottomRightX float64 `json:"bottom_right_x"`
	BottomRightY float64 `json:"bottom_right_y"`
}

// ThumbnailAnnotation is one stored classification result. Any row for a
// video_id marks that video as processed.
type ThumbnailAnnotation struct {
	VideoID      string    `json:"video_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Label        string    `json:"label"`
	Confidence   float64   `json:"confidence"`
	TopLeftX     float64   `json:"top_left_x"`
	TopLeftY     float64   `json:"top_left_y"`
	BottomRightX float64   `json:"bottom_right_x"`
	BottomRightY float64   `json:"bottom_right_y"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// ThumbnailCropout is one stored cropped-image reference.
type ThumbnailCropout struct {
	VideoID      string    `json:"video_id"`
	Label        string    `json:"label"`
	ObjectName   string    `json:"object_name"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}
