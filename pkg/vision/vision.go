package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "videxcl-srv/pkg/http"
)

const (
	featureObjectLocalization = "OBJECT_LOCALIZATION"
	featureFaceDetection      = "FACE_DETECTION"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		config:     cfg,
		httpClient: pkghttp.NewClient(pkghttp.DefaultConfig()),
	}
}

// AnnotateObjects returns localized object annotations for the image.
func (c *clientImpl) AnnotateObjects(ctx context.Context, image []byte) ([]Annotation, error) {
	return c.annotate(ctx, image, featureObjectLocalization)
}

// AnnotateFaces returns face annotations for the image. The API reports face
// bounding boxes without labels; the client normalizes them to LabelFace.
func (c *clientImpl) AnnotateFaces(ctx context.Context, image []byte) ([]Annotation, error) {
	annotations, err := c.annotate(ctx, image, featureFaceDetection)
	if err != nil {
		return nil, err
	}
	for i := range annotations {
		if annotations[i].Label == "" {
			annotations[i].Label = LabelFace
		}
	}
	return annotations, nil
}

func (c *clientImpl) annotate(ctx context.Context, image []byte, feature string) ([]Annotation, error) {
	endpoint := fmt.Sprintf("%s/v1/images:annotate", c.config.BaseURL)
	headers := map[string]string{}
	if c.config.APIKey != "" {
		headers["x-api-key"] = c.config.APIKey
	}

	body, status, err := c.httpClient.Post(ctx, endpoint, annotateRequest{
		Image:   base64.StdEncoding.EncodeToString(image),
		Feature: feature,
	}, headers)
	if err != nil {
		return nil, fmt.Errorf("vision: %s annotate failed: %w", feature, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("vision: %s annotate returned status %d", feature, status)
	}

	var resp annotateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("vision: failed to unmarshal annotations: %w", err)
	}
	return resp.Annotations, nil
}
