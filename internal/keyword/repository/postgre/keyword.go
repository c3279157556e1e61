package postgre

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"videxcl-srv/internal/model"
)

// ListContent - Scannable fields of every content record
func (r *implRepository) ListContent(ctx context.Context) ([]model.ContentMetadata, error) {
	query, args, err := r.builder.
		Select("content_id", "content_type", "title", "description", "tags").
		From("content_metadata").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ListContent build: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListContent: %w", err)
	}
	defer rows.Close()

	var contents []model.ContentMetadata
	for rows.Next() {
		var (
			c    model.ContentMetadata
			tags pq.StringArray
		)
		if err := rows.Scan(&c.ContentID, &c.ContentType, &c.Title, &c.Description, &tags); err != nil {
			return nil, fmt.Errorf("ListContent scan: %w", err)
		}
		c.Tags = tags
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContent rows: %w", err)
	}

	return contents, nil
}

// ReplaceMatches - Full recompute swap. The delete and the insert share one
// transaction so readers never see a half-built materialization.
func (r *implRepository) ReplaceMatches(ctx context.Context, matches []model.KeywordMatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceMatches begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM keyword_matches"); err != nil {
		return fmt.Errorf("ReplaceMatches delete: %w", err)
	}

	if len(matches) > 0 {
		ins := r.builder.
			Insert("keyword_matches").
			Columns("content_id", "matched_field", "keyword")
		for _, m := range matches {
			ins = ins.Values(m.ContentID, m.MatchedField, m.Keyword)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("ReplaceMatches build: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("ReplaceMatches insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceMatches commit: %w", err)
	}
	return nil
}
