package ytapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkghttp "videxcl-srv/pkg/http"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		config:     cfg,
		httpClient: pkghttp.NewClient(pkghttp.DefaultConfig()),
	}
}

// ListVideos fetches metadata for the given video IDs, 50 per request.
func (c *clientImpl) ListVideos(ctx context.Context, ids []string) ([]Video, error) {
	var all []Video
	for _, chunk := range chunkIDs(ids, ChunkSize) {
		body, err := c.list(ctx, "videos", chunk)
		if err != nil {
			return nil, err
		}
		var resp listVideosResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("ytapi: failed to unmarshal videos: %w", err)
		}
		all = append(all, resp.Items...)
	}
	return all, nil
}

// ListChannels fetches metadata for the given channel IDs, 50 per request.
func (c *clientImpl) ListChannels(ctx context.Context, ids []string) ([]Channel, error) {
	var all []Channel
	for _, chunk := range chunkIDs(ids, ChunkSize) {
		body, err := c.list(ctx, "channels", chunk)
		if err != nil {
			return nil, err
		}
		var resp listChannelsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("ytapi: failed to unmarshal channels: %w", err)
		}
		all = append(all, resp.Items...)
	}
	return all, nil
}

func (c *clientImpl) list(ctx context.Context, resource string, ids []string) ([]byte, error) {
	q := url.Values{}
	q.Set("id", strings.Join(ids, ","))
	q.Set("maxResults", fmt.Sprintf("%d", ChunkSize))
	if c.config.APIKey != "" {
		q.Set("key", c.config.APIKey)
	}
	endpoint := fmt.Sprintf("%s/v3/%s?%s", c.config.BaseURL, resource, q.Encode())

	body, status, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ytapi: %s list failed: %w", resource, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("ytapi: %s list returned status %d", resource, status)
	}
	return body, nil
}

// chunkIDs splits ids into slices of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
