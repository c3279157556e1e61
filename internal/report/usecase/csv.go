package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/util"
)

var placementCSVHeader = []string{
	"account_id", "content_id", "content_type", "display_name", "target_url",
	"impressions", "cost_micros", "conversions", "video_views", "clicks", "ctr", "observed_at",
}

// uploadBatchCSV writes the batch as a CSV object. Object names repeat for
// the same (account, day) key, so a re-run overwrites the prior object.
func (uc *implUseCase) uploadBatchCSV(ctx context.Context, accountID, contentType string, observedAt time.Time, records []model.PlacementRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.AccountID,
			rec.ContentID,
			rec.ContentType,
			rec.DisplayName,
			rec.TargetURL,
			strconv.FormatInt(rec.Impressions, 10),
			strconv.FormatInt(rec.CostMicros, 10),
			strconv.FormatFloat(rec.Conversions, 'f', -1, 64),
			strconv.FormatInt(rec.VideoViews, 10),
			strconv.FormatInt(rec.Clicks, 10),
			strconv.FormatFloat(rec.CTR, 'f', -1, 64),
			rec.ObservedAt.Format(time.RFC3339),
		})
	}

	data, err := util.EncodeCSV(placementCSVHeader, rows)
	if err != nil {
		return err
	}

	objectName := fmt.Sprintf("google-ads-report-%s/%s_%s.csv", contentType, accountID, util.DateKey(observedAt))
	_, err = uc.store.PutObject(ctx, &minio.PutRequest{
		BucketName:  uc.dataBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: "text/csv",
	})
	return err
}
