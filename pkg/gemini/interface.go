package gemini

import "context"

// IGemini defines the interface for multimodal content evaluation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// EvaluateImage runs the configured model over one image URL and returns
	// the structured evaluations parsed from the model response.
	EvaluateImage(ctx context.Context, req EvaluationRequest) ([]AgeEvaluation, error)
	// Model returns the model identifier evaluations are produced with.
	Model() string
}

// NewGemini creates a new evaluation client. Model defaults to DefaultModel
// if empty. Returns the interface.
func NewGemini(cfg Config) (IGemini, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return newClientImpl(cfg), nil
}
