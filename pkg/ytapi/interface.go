package ytapi

import "context"

// IContentAPI defines the interface for the content metadata API.
// Implementations are safe for concurrent use.
type IContentAPI interface {
	// ListVideos fetches metadata for the given video IDs. IDs are chunked
	// internally to respect the API's per-request limit.
	ListVideos(ctx context.Context, ids []string) ([]Video, error)
	// ListChannels fetches metadata for the given channel IDs.
	ListChannels(ctx context.Context, ids []string) ([]Channel, error)
}

// NewContentAPI creates a new content metadata client. Returns the interface.
func NewContentAPI(cfg Config) (IContentAPI, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return newClientImpl(cfg), nil
}
