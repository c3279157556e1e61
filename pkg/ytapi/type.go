package ytapi

import (
	"errors"
	"time"

	pkghttp "videxcl-srv/pkg/http"
)

// ChunkSize is the maximum number of IDs per list request, matching the
// upstream API limit.
const ChunkSize = 50

var (
	ErrBaseURLRequired = errors.New("ytapi: base URL is required")
)

// Config holds configuration for the content metadata client.
type Config struct {
	BaseURL string
	APIKey  string
}

// Video is the metadata for one video.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	ChannelID    string    `json:"channel_id"`
	PublishedAt  time.Time `json:"published_at"`
	Duration     string    `json:"duration"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// Channel is the metadata for one channel.
type Channel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	Country         string    `json:"country"`
	PublishedAt     time.Time `json:"published_at"`
	ViewCount       int64     `json:"view_count"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
}

// clientImpl implements IContentAPI.
type clientImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

type listVideosResponse struct {
	Items []Video `json:"items"`
}

type listChannelsResponse struct {
	Items []Channel `json:"items"`
}
