package usecase

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/report"
)

// fanOut publishes one content unit per distinct new content id in the
// batch. In-run duplicates collapse via the distinct set; cross-run
// duplicates are filtered with an existence check against the accumulated
// metadata store.
func (uc *implUseCase) fanOut(ctx context.Context, input report.ExtractInput, records []model.PlacementRecord) (int, error) {
	seen := make(map[string]bool, len(records))
	distinct := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ContentID == "" || seen[rec.ContentID] {
			continue
		}
		seen[rec.ContentID] = true
		distinct = append(distinct, rec.ContentID)
	}

	existing, err := uc.repo.ExistingContentIDs(ctx, distinct)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.fanOut: existence query failed: %v", err)
		return 0, report.ErrPersistFailed
	}

	var (
		mu        sync.Mutex
		pubErrs   error
		published int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workerLimit)

	for _, id := range distinct {
		if existing[id] {
			continue
		}
		contentID := id
		g.Go(func() error {
			unit := model.ContentUnit{
				RunID:       input.Unit.RunID,
				ContentID:   contentID,
				ContentType: input.ContentType,
			}
			err := uc.producer.PublishContentUnit(gctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(ctx, "report.usecase.fanOut: publish failed for %s: %v", contentID, err)
				pubErrs = multierr.Append(pubErrs, err)
				return nil
			}
			published++
			return nil
		})
	}
	_ = g.Wait()

	// Partial publish failure surfaces to the caller so the bus redelivers
	// the whole unit; enrichment is idempotent under redelivery.
	return published, pubErrs
}
