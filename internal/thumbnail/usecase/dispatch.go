package usecase

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
)

// Dispatch selects video ids seen in placements but never annotated and fans
// them out as process units. Redelivery of a dispatch message is harmless:
// already-annotated videos fall out of the candidate query, and Process skips
// the rest.
func (uc *implUseCase) Dispatch(ctx context.Context, input thumbnail.DispatchInput) (thumbnail.DispatchOutput, error) {
	limit := input.Dispatch.Limit
	if limit <= 0 {
		limit = uc.cfg.DispatchLimit
	}

	ids, err := uc.repo.ListUnprocessedVideoIDs(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Dispatch: candidate query failed: %v", err)
		return thumbnail.DispatchOutput{}, thumbnail.ErrPersistFailed
	}

	output := thumbnail.DispatchOutput{Candidates: len(ids)}
	if len(ids) == 0 {
		uc.l.Infof(ctx, "thumbnail.usecase.Dispatch: no unprocessed videos (run %s)", input.Dispatch.RunID)
		return output, nil
	}

	var (
		mu         sync.Mutex
		pubErrs    error
		dispatched int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.WorkerLimit)

	for _, id := range ids {
		videoID := id
		g.Go(func() error {
			unit := model.ThumbnailUnit{
				RunID:       input.Dispatch.RunID,
				VideoID:     videoID,
				CropObjects: input.Dispatch.CropObjects,
			}
			err := uc.producer.PublishProcessUnit(gctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(ctx, "thumbnail.usecase.Dispatch: publish failed for %s: %v", videoID, err)
				pubErrs = multierr.Append(pubErrs, err)
				return nil
			}
			dispatched++
			return nil
		})
	}
	_ = g.Wait()

	output.Dispatched = dispatched
	if pubErrs != nil {
		return output, thumbnail.ErrPublishFailed
	}

	uc.l.Infof(ctx, "thumbnail.usecase.Dispatch: dispatched %d of %d videos (run %s)",
		dispatched, len(ids), input.Dispatch.RunID)
	return output, nil
}
