package postgre

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	repo "videxcl-srv/internal/exclusion/repository"
	"videxcl-srv/internal/model"
)

// ReplaceExclusions - Per-account snapshot replace in a single transaction
func (r *implRepository) ReplaceExclusions(ctx context.Context, opt repo.ReplaceExclusionsOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceExclusions begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	delQuery, delArgs, err := r.builder.
		Delete("exclusions").
		Where(sq.Eq{"account_id": opt.AccountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ReplaceExclusions build delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("ReplaceExclusions delete: %w", err)
	}

	if len(opt.Entries) > 0 {
		ins := r.builder.
			Insert("exclusions").
			Columns("account_id", "content_id", "content_type", "exclusion_list", "excluded_at")
		for _, e := range opt.Entries {
			ins = ins.Values(e.AccountID, e.ContentID, e.ContentType, e.ExclusionList, e.ExcludedAt)
		}
		insQuery, insArgs, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("ReplaceExclusions build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("ReplaceExclusions insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceExclusions commit: %w", err)
	}
	return nil
}

// ListNewExclusionCandidates - Matched placements absent from the account's
// snapshot of one exclusion list. Runs against the snapshot, so callers
// refresh it first.
func (r *implRepository) ListNewExclusionCandidates(ctx context.Context, opt repo.ListNewCandidatesOptions) ([]model.ExclusionCandidate, error) {
	query := `
		SELECT DISTINCT m.content_id, c.content_type
		FROM keyword_matches m
		JOIN content_metadata c ON c.content_id = m.content_id
		WHERE NOT EXISTS (
			SELECT 1 FROM exclusions e
			WHERE e.account_id = $1
			  AND e.exclusion_list = $2
			  AND e.content_id = m.content_id
		)`

	rows, err := r.db.QueryContext(ctx, query, opt.AccountID, opt.ExclusionList)
	if err != nil {
		return nil, fmt.Errorf("ListNewExclusionCandidates: %w", err)
	}
	defer rows.Close()

	var candidates []model.ExclusionCandidate
	for rows.Next() {
		var c model.ExclusionCandidate
		if err := rows.Scan(&c.ContentID, &c.ContentType); err != nil {
			return nil, fmt.Errorf("ListNewExclusionCandidates scan: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListNewExclusionCandidates rows: %w", err)
	}

	return candidates, nil
}
