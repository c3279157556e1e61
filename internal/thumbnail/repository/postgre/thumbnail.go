package postgre

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"videxcl-srv/internal/model"
)

// ListUnprocessedVideoIDs - Distinct video ids seen in placements with no
// annotation row yet. Any annotation row marks a video as processed.
func (r *implRepository) ListUnprocessedVideoIDs(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT p.content_id
		FROM placements p
		WHERE p.content_type = $1
		  AND NOT EXISTS (
			SELECT 1 FROM thumbnail_annotations a WHERE a.video_id = p.content_id
		  )
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, model.ContentTypeVideo, limit)
	if err != nil {
		return nil, fmt.Errorf("ListUnprocessedVideoIDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListUnprocessedVideoIDs scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUnprocessedVideoIDs rows: %w", err)
	}

	return ids, nil
}

// AnnotationsExist - Existence check by video id
func (r *implRepository) AnnotationsExist(ctx context.Context, videoID string) (bool, error) {
	query, args, err := r.builder.
		Select("1").
		From("thumbnail_annotations").
		Where(sq.Eq{"video_id": videoID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("AnnotationsExist build: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("AnnotationsExist: %w", err)
	}
	return true, nil
}

// CreateAnnotations - Bulk append of annotation rows
func (r *implRepository) CreateAnnotations(ctx context.Context, annotations []model.ThumbnailAnnotation) error {
	if len(annotations) == 0 {
		return nil
	}

	ins := r.builder.
		Insert("thumbnail_annotations").
		Columns("video_id", "thumbnail_url", "label", "confidence",
			"top_left_x", "top_left_y", "bottom_right_x", "bottom_right_y", "processed_at")
	for _, a := range annotations {
		ins = ins.Values(a.VideoID, a.ThumbnailURL, a.Label, a.Confidence,
			a.TopLeftX, a.TopLeftY, a.BottomRightX, a.BottomRightY, a.ProcessedAt)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("CreateAnnotations build: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CreateAnnotations: %w", err)
	}
	return nil
}

// CreateCropout - Append one cropout reference row
func (r *implRepository) CreateCropout(ctx context.Context, cropout model.ThumbnailCropout) error {
	query, args, err := r.builder.
		Insert("thumbnail_cropouts").
		Columns("video_id", "label", "object_name", "thumbnail_url", "created_at").
		Values(cropout.VideoID, cropout.Label, cropout.ObjectName, cropout.ThumbnailURL, cropout.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("CreateCropout build: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CreateCropout: %w", err)
	}
	return nil
}
