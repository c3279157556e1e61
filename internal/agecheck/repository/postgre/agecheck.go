package postgre

import (
	"context"
	"fmt"

	"videxcl-srv/internal/model"
)

// ListUnevaluatedVideoIDs - Distinct video ids seen in placements with no
// verdict row yet. Any verdict row marks a video as evaluated, failed
// evaluations included.
func (r *implRepository) ListUnevaluatedVideoIDs(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT p.content_id
		FROM placements p
		WHERE p.content_type = $1
		  AND NOT EXISTS (
			SELECT 1 FROM age_verdicts v WHERE v.video_id = p.content_id
		  )
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, model.ContentTypeVideo, limit)
	if err != nil {
		return nil, fmt.Errorf("ListUnevaluatedVideoIDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListUnevaluatedVideoIDs scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUnevaluatedVideoIDs rows: %w", err)
	}

	return ids, nil
}

// CreateVerdicts - Bulk append of verdict rows
func (r *implRepository) CreateVerdicts(ctx context.Context, verdicts []model.AgeVerdict) error {
	if len(verdicts) == 0 {
		return nil
	}

	ins := r.builder.
		Insert("age_verdicts").
		Columns("video_id", "thumbnail_url", "evaluation_model_id",
			"evaluated_description", "evaluated_age", "evaluated_at")
	for _, v := range verdicts {
		ins = ins.Values(v.VideoID, v.ThumbnailURL, v.ModelID, v.Description, v.Age, v.EvaluatedAt)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("CreateVerdicts build: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CreateVerdicts: %w", err)
	}
	return nil
}
