package postgre

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"videxcl-srv/internal/model"
)

// ContentExists - Existence check by primary key
func (r *implRepository) ContentExists(ctx context.Context, contentID string) (bool, error) {
	query, args, err := r.builder.
		Select("1").
		From("content_metadata").
		Where(sq.Eq{"content_id": contentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("ContentExists build: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ContentExists: %w", err)
	}
	return true, nil
}

// CreateContent - Append one metadata row
func (r *implRepository) CreateContent(ctx context.Context, content model.ContentMetadata) error {
	query, args, err := r.builder.
		Insert("content_metadata").
		Columns("content_id", "content_type", "title", "description", "tags",
			"channel_id", "country", "duration", "view_count", "like_count",
			"comment_count", "subscriber_count", "video_count", "published_at", "fetched_at").
		Values(content.ContentID, content.ContentType, content.Title, content.Description,
			pq.StringArray(content.Tags), content.ChannelID, content.Country, content.Duration,
			content.ViewCount, content.LikeCount, content.CommentCount,
			content.SubscriberCount, content.VideoCount, content.PublishedAt, content.FetchedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("CreateContent build: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CreateContent: %w", err)
	}
	return nil
}
