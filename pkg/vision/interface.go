package vision

import "context"

// IVision defines the interface for the image annotation API.
// Implementations are safe for concurrent use.
type IVision interface {
	// AnnotateObjects returns localized object annotations for an image.
	AnnotateObjects(ctx context.Context, image []byte) ([]Annotation, error)
	// AnnotateFaces returns face annotations for an image.
	AnnotateFaces(ctx context.Context, image []byte) ([]Annotation, error)
}

// NewVision creates a new vision client. Returns the interface.
func NewVision(cfg Config) (IVision, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return newClientImpl(cfg), nil
}
