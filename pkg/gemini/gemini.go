package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	pkghttp "videxcl-srv/pkg/http"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		config: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: time.Second,
		}),
	}
}

func (c *clientImpl) Model() string {
	return c.config.Model
}

// EvaluateImage sends the image by URL together with the prompt and system
// instruction, asking for a JSON response, and parses the structured items
// out of the first candidate.
func (c *clientImpl) EvaluateImage(ctx context.Context, req EvaluationRequest) ([]AgeEvaluation, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, c.config.APIKey)

	body := generateRequest{
		Contents: []content{{
			Parts: []part{
				{FileData: &fileData{FileURI: req.ImageURL, MimeType: "image/jpeg"}},
				{Text: req.Prompt},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	respBody, status, err := c.httpClient.Post(ctx, endpoint, body, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: evaluation call failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("gemini: evaluation returned status %d", status)
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("gemini: failed to unmarshal response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoContent
	}

	var text string
	for _, p := range resp.Candidates[0].Content.Parts {
		text += p.Text
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("gemini: response is not the expected JSON document: %w", err)
	}
	return payload.Items, nil
}
