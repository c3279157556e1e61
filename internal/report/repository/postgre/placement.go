package postgre

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	repo "videxcl-srv/internal/report/repository"
)

// ReplacePlacements - Whole-partition overwrite for one (account, day,
// content type) key. Delete plus bulk insert in a single transaction so the
// store never exposes a half-replaced batch.
func (r *implRepository) ReplacePlacements(ctx context.Context, opt repo.ReplacePlacementsOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplacePlacements begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	delQuery, delArgs, err := r.builder.
		Delete("placements").
		Where(sq.Eq{"account_id": opt.AccountID, "content_type": opt.ContentType}).
		Where("DATE(observed_at) = ?", opt.Date.Format("2006-01-02")).
		ToSql()
	if err != nil {
		return fmt.Errorf("ReplacePlacements build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("ReplacePlacements delete: %w", err)
	}

	if len(opt.Records) > 0 {
		ins := r.builder.
			Insert("placements").
			Columns("account_id", "content_id", "content_type", "display_name", "target_url",
				"impressions", "cost_micros", "conversions", "video_views", "clicks", "ctr", "observed_at")
		for _, rec := range opt.Records {
			ins = ins.Values(rec.AccountID, rec.ContentID, rec.ContentType, rec.DisplayName, rec.TargetURL,
				rec.Impressions, rec.CostMicros, rec.Conversions, rec.VideoViews, rec.Clicks, rec.CTR, rec.ObservedAt)
		}
		insQuery, insArgs, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("ReplacePlacements build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("ReplacePlacements insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplacePlacements commit: %w", err)
	}
	return nil
}

// ExistingContentIDs - Which of the given ids already have a metadata row
func (r *implRepository) ExistingContentIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT content_id FROM content_metadata WHERE content_id = ANY($1)`,
		pq.StringArray(ids))
	if err != nil {
		return nil, fmt.Errorf("ExistingContentIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ExistingContentIDs scan: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistingContentIDs rows: %w", err)
	}

	return result, nil
}
