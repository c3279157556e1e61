package model

import "time"

// ModelIDNone marks verdict rows written without a model call, e.g. when a
// video has no usable thumbnails.
const ModelIDNone = "NONE"

// AgeEvaluationUnit is one batch of videos to evaluate. The prompt and system
// instruction travel with the unit so the evaluator never reads the config
// source itself.
type AgeEvaluationUnit struct {
	RunID             string   `json:"run_id"`
	SystemInstruction string   `json:"system_instruction"`
	Prompt            string   `json:"prompt"`
	BatchPart         int      `json:"batch_part"`
	TotalBatchParts   int      `json:"total_batch_parts"`
	VideoIDs          []string `json:"video_ids"`
}

// AgeVerdict is one stored evaluation result. Any row for a video_id marks
// that video as evaluated. Failed evaluations are recorded too, with the
// failure in Description and a zero Age.
type AgeVerdict struct {
	VideoID      string    `json:"video_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ModelID      string    `json:"evaluation_model_id"`
	Description  string    `json:"evaluated_description"`
	Age          int       `json:"evaluated_age"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}
