package usecase

import (
	"context"
	"strings"
	"time"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/report"
	repo "videxcl-srv/internal/report/repository"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/util"
)

// Extract runs the placement report for one work unit and persists the batch
// with overwrite-by-key (account, day, content type) semantics. A re-run for
// the same key replaces the prior batch wholesale.
func (uc *implUseCase) Extract(ctx context.Context, input report.ExtractInput) (report.ExtractOutput, error) {
	placementType, err := placementTypeFor(input.ContentType)
	if err != nil {
		return report.ExtractOutput{}, err
	}

	unit := input.Unit
	lookback := unit.LookbackDays
	if lookback <= 0 {
		lookback = uc.defaultLookback
	}
	dateFrom, dateTo := util.QueryDates(lookback, time.Now())

	rows, err := uc.ads.SearchPlacements(ctx, adsapi.PlacementReportRequest{
		AccountID:     unit.AccountID,
		PlacementType: placementType,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Filters:       strings.Join(unit.Filters, " AND "),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Extract: report query failed for account %s: %v", unit.AccountID, err)
		return report.ExtractOutput{}, report.ErrReportQueryFailed
	}

	observedAt := time.Now()
	records := make([]model.PlacementRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.PlacementRecord{
			AccountID:   unit.AccountID,
			ContentID:   row.ContentID,
			ContentType: input.ContentType,
			DisplayName: row.DisplayName,
			TargetURL:   row.TargetURL,
			Impressions: row.Impressions,
			CostMicros:  row.CostMicros,
			Conversions: row.Conversions,
			VideoViews:  row.VideoViews,
			Clicks:      row.Clicks,
			CTR:         row.CTR,
			ObservedAt:  observedAt,
		})
	}

	if err := uc.uploadBatchCSV(ctx, unit.AccountID, input.ContentType, observedAt, records); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Extract: CSV upload failed for account %s: %v", unit.AccountID, err)
		return report.ExtractOutput{}, report.ErrPersistFailed
	}

	if err := uc.repo.ReplacePlacements(ctx, repo.ReplacePlacementsOptions{
		AccountID:   unit.AccountID,
		Date:        observedAt,
		ContentType: input.ContentType,
		Records:     records,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Extract: replace failed for account %s: %v", unit.AccountID, err)
		return report.ExtractOutput{}, report.ErrPersistFailed
	}

	output := report.ExtractOutput{
		AccountID: unit.AccountID,
		Rows:      len(records),
	}

	// Empty report: nothing new to enrich, no follow-on jobs.
	if len(records) == 0 {
		uc.l.Infof(ctx, "report.usecase.Extract: empty %s report for account %s", input.ContentType, unit.AccountID)
		return output, nil
	}

	newContent, err := uc.fanOut(ctx, input, records)
	output.NewContent = newContent
	if err != nil {
		return output, err
	}

	if input.ContentType == model.ContentTypeVideo && newContent > 0 {
		dispatch := model.ThumbnailDispatch{
			RunID:       unit.RunID,
			CropObjects: unit.CropObjects,
		}
		if err := uc.producer.PublishThumbnailDispatch(ctx, dispatch); err != nil {
			uc.l.Errorf(ctx, "report.usecase.Extract: thumbnail dispatch publish failed: %v", err)
			return output, err
		}
		output.Dispatched = true
	}

	uc.l.Infof(ctx, "report.usecase.Extract: account %s %s report: %d rows, %d new content ids",
		unit.AccountID, input.ContentType, output.Rows, output.NewContent)
	return output, nil
}

func placementTypeFor(contentType string) (string, error) {
	switch contentType {
	case model.ContentTypeVideo:
		return adsapi.PlacementTypeVideo, nil
	case model.ContentTypeChannel:
		return adsapi.PlacementTypeChannel, nil
	default:
		return "", report.ErrUnknownContentType
	}
}
