package vision

import (
	"errors"

	pkghttp "videxcl-srv/pkg/http"
)

// LabelFace is the label the face detection endpoint reports.
const LabelFace = "Face"

var (
	ErrBaseURLRequired = errors.New("vision: base URL is required")
)

// Config holds configuration for the vision client.
type Config struct {
	BaseURL string
	APIKey  string
}

// Annotation is one detected object or face. Coordinates are relative to the
// image dimensions, in [0, 1].
type Annotation struct {
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	TopLeftX     float64 `json:"top_left_x"`
	TopLeftY     float64 `json:"top_left_y"`
	BottomRightX float64 `json:"bottom_right_x"`
	BottomRightY float64 `json:"bottom_right_y"`
}

// clientImpl implements IVision.
type clientImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

type annotateRequest struct {
	Image   string `json:"image"` // base64-encoded
	Feature string `json:"feature"`
}

type annotateResponse struct {
	Annotations []Annotation `json:"annotations"`
}
