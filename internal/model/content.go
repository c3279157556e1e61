package model

import "time"

// Content type constants
const (
	ContentTypeVideo   = "video"
	ContentTypeChannel = "channel"
)

// ContentMetadata is one enriched content row, appended at most once per
// content_id. Channel rows leave the video-only stats zero and vice versa.
type ContentMetadata struct {
	ContentID       string    `json:"content_id"`
	ContentType     string    `json:"content_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	ChannelID       string    `json:"channel_id,omitempty"`
	Country         string    `json:"country,omitempty"`
	Duration        string    `json:"duration,omitempty"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	PublishedAt     time.Time `json:"published_at"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// ContentUnit is one fan-out unit on a metadata topic.
type ContentUnit struct {
	RunID       string `json:"run_id"`
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
}
