package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"videxcl-srv/internal/exclusion"
	repo "videxcl-srv/internal/exclusion/repository"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/util"
)

var exclusionCSVHeader = []string{
	"account_id", "content_id", "content_type", "exclusion_list", "excluded_at",
}

// Snapshot fetches the enabled exclusion criteria for one account and
// replaces the stored snapshot wholesale.
func (uc *implUseCase) Snapshot(ctx context.Context, input exclusion.SnapshotInput) (exclusion.SnapshotOutput, error) {
	accountID := input.Unit.AccountID

	rows, err := uc.ads.SearchExclusions(ctx, accountID)
	if err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.Snapshot: exclusion query failed for account %s: %v", accountID, err)
		return exclusion.SnapshotOutput{}, exclusion.ErrExclusionQueryFailed
	}

	excludedAt := time.Now()
	entries := make([]model.ExclusionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.ExclusionEntry{
			AccountID:     accountID,
			ContentID:     row.ContentID,
			ContentType:   contentTypeFor(row.CriterionType),
			ExclusionList: row.SharedSetName,
			ExcludedAt:    excludedAt,
		})
	}

	if err := uc.uploadSnapshotCSV(ctx, accountID, excludedAt, entries); err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.Snapshot: CSV upload failed for account %s: %v", accountID, err)
		return exclusion.SnapshotOutput{}, exclusion.ErrPersistFailed
	}

	if err := uc.repo.ReplaceExclusions(ctx, repo.ReplaceExclusionsOptions{
		AccountID: accountID,
		Entries:   entries,
	}); err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.Snapshot: replace failed for account %s: %v", accountID, err)
		return exclusion.SnapshotOutput{}, exclusion.ErrPersistFailed
	}

	uc.l.Infof(ctx, "exclusion.usecase.Snapshot: account %s: %d entries", accountID, len(entries))
	return exclusion.SnapshotOutput{
		AccountID: accountID,
		Entries:   len(entries),
	}, nil
}

// contentTypeFor maps the criterion type reported by the ads API to the
// pipeline's content types. Unknown criteria keep their raw name.
func contentTypeFor(criterionType string) string {
	switch strings.ToUpper(criterionType) {
	case "YOUTUBE_VIDEO":
		return model.ContentTypeVideo
	case "YOUTUBE_CHANNEL":
		return model.ContentTypeChannel
	default:
		return strings.ToLower(criterionType)
	}
}

func (uc *implUseCase) uploadSnapshotCSV(ctx context.Context, accountID string, excludedAt time.Time, entries []model.ExclusionEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.AccountID,
			e.ContentID,
			e.ContentType,
			e.ExclusionList,
			e.ExcludedAt.Format(time.RFC3339),
		})
	}

	data, err := util.EncodeCSV(exclusionCSVHeader, rows)
	if err != nil {
		return err
	}

	objectName := fmt.Sprintf("google-ads-exclusions/%s_%s.csv", accountID, util.DateKey(excludedAt))
	_, err = uc.store.PutObject(ctx, &minio.PutRequest{
		BucketName:  uc.dataBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: "text/csv",
	})
	return err
}
