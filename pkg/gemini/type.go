package gemini

import (
	"errors"

	pkghttp "videxcl-srv/pkg/http"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

var (
	ErrBaseURLRequired = errors.New("gemini: base URL is required")
	ErrAPIKeyRequired  = errors.New("gemini: API key is required")
	ErrNoContent       = errors.New("gemini: no content generated")
)

// Config holds configuration for the evaluation client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// EvaluationRequest is one image evaluation call.
type EvaluationRequest struct {
	ImageURL          string
	SystemInstruction string
	Prompt            string
}

// AgeEvaluation is one structured verdict parsed from the model response.
type AgeEvaluation struct {
	Description string `json:"evaluated_description"`
	Age         int    `json:"evaluated_age"`
}

// clientImpl implements IGemini.
type clientImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generation_config"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text     string    `json:"text,omitempty"`
	FileData *fileData `json:"file_data,omitempty"`
}

type fileData struct {
	FileURI  string `json:"file_uri"`
	MimeType string `json:"mime_type"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// evaluationPayload is the JSON document the model is instructed to return.
type evaluationPayload struct {
	Items []AgeEvaluation `json:"items"`
}
