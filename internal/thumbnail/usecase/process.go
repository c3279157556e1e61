package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/thumbnail"
	"videxcl-srv/pkg/vision"
)

// cropLabels are the detection labels worth cutting out for review.
var cropLabels = map[string]bool{
	"Face":   true,
	"Person": true,
}

// Process resolves the best thumbnail per slot, runs object and face
// detection on each, and appends the results. A failing thumbnail does not
// block its siblings. Crop units are published before the annotation rows are
// written: once a row exists the video counts as processed and a redelivery
// would skip it, so anything still pending has to be on the bus by then.
func (uc *implUseCase) Process(ctx context.Context, input thumbnail.ProcessInput) (thumbnail.ProcessOutput, error) {
	unit := input.Unit
	output := thumbnail.ProcessOutput{VideoID: unit.VideoID}

	exists, err := uc.repo.AnnotationsExist(ctx, unit.VideoID)
	if err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Process: existence check failed for %s: %v", unit.VideoID, err)
		return output, thumbnail.ErrPersistFailed
	}
	if exists {
		uc.l.Infof(ctx, "thumbnail.usecase.Process: video %s already processed, skipping", unit.VideoID)
		output.Skipped = true
		return output, nil
	}

	thumbs := uc.resolveThumbnails(ctx, unit.VideoID)
	output.Thumbnails = len(thumbs)
	if len(thumbs) == 0 {
		uc.l.Warnf(ctx, "thumbnail.usecase.Process: no thumbnails found for %s", unit.VideoID)
		return output, nil
	}

	processedAt := time.Now().UTC()

	var (
		mu          sync.Mutex
		annotations []model.ThumbnailAnnotation
		failed      int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.WorkerLimit)

	for _, t := range thumbs {
		thumb := t
		g.Go(func() error {
			found, err := uc.annotate(gctx, thumb)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(ctx, "thumbnail.usecase.Process: annotation failed for %s: %v", thumb.url, err)
				failed++
				return nil
			}
			for _, a := range found {
				annotations = append(annotations, model.ThumbnailAnnotation{
					VideoID:      unit.VideoID,
					ThumbnailURL: thumb.url,
					Label:        a.Label,
					Confidence:   a.Confidence,
					TopLeftX:     a.TopLeftX,
					TopLeftY:     a.TopLeftY,
					BottomRightX: a.BottomRightX,
					BottomRightY: a.BottomRightY,
					ProcessedAt:  processedAt,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	output.Failed = failed
	if failed == len(thumbs) {
		// Nothing usable came back; leave the video unprocessed for a retry.
		return output, thumbnail.ErrAnnotationFailed
	}

	if unit.CropObjects {
		published, pubErrs := uc.publishCropUnits(ctx, unit, annotations)
		output.CropUnits = published
		if pubErrs != nil {
			return output, thumbnail.ErrPublishFailed
		}
	}

	if err := uc.repo.CreateAnnotations(ctx, annotations); err != nil {
		uc.l.Errorf(ctx, "thumbnail.usecase.Process: persist failed for %s: %v", unit.VideoID, err)
		return output, thumbnail.ErrPersistFailed
	}
	output.Annotations = len(annotations)

	uc.l.Infof(ctx, "thumbnail.usecase.Process: video %s: thumbnails=%d annotations=%d cropouts=%d failed=%d",
		unit.VideoID, output.Thumbnails, output.Annotations, output.CropUnits, output.Failed)
	return output, nil
}

// annotate runs both detection features against one image.
func (uc *implUseCase) annotate(ctx context.Context, thumb resolvedThumbnail) ([]vision.Annotation, error) {
	objects, err := uc.vision.AnnotateObjects(ctx, thumb.data)
	if err != nil {
		return nil, err
	}
	faces, err := uc.vision.AnnotateFaces(ctx, thumb.data)
	if err != nil {
		return nil, err
	}
	return append(objects, faces...), nil
}

func (uc *implUseCase) publishCropUnits(ctx context.Context, unit model.ThumbnailUnit, annotations []model.ThumbnailAnnotation) (int, error) {
	var (
		pubErrs   error
		published int
	)
	for _, a := range annotations {
		if !cropLabels[a.Label] || a.Confidence < uc.cfg.CropMinConfidence {
			continue
		}
		crop := model.CropUnit{
			RunID:        unit.RunID,
			VideoID:      a.VideoID,
			ThumbnailURL: a.ThumbnailURL,
			Label:        a.Label,
			Confidence:   a.Confidence,
			TopLeftX:     a.TopLeftX,
			TopLeftY:     a.TopLeftY,
			BottomRightX: a.BottomRightX,
			BottomRightY: a.BottomRightY,
		}
		if err := uc.producer.PublishCropUnit(ctx, crop); err != nil {
			uc.l.Errorf(ctx, "thumbnail.usecase.publishCropUnits: publish failed for %s/%s: %v",
				a.VideoID, a.Label, err)
			pubErrs = multierr.Append(pubErrs, err)
			continue
		}
		published++
	}
	return published, pubErrs
}
