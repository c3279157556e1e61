package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"videxcl-srv/internal/agecheck"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/gemini"
)

// Each thumbnail slot (main image plus one auto frame per third of the
// video) is probed best resolution first; the first name that serves an
// image wins the slot. The model reads the image by URL, so only the
// status matters here.
var (
	evaluationSizes = []string{"maxres", "sd", "hq", "mq", ""}
	evaluationSlots = []string{"default", "1", "2", "3"}
)

const evaluationURLPattern = "https://i.ytimg.com/vi/%s/%s%s.jpg"

// Evaluate runs the age model over every thumbnail of every video in the
// unit and appends one verdict row per model answer. Videos without a
// single reachable thumbnail still get a row so they are not re-selected
// on the next dispatch.
func (uc *implUseCase) Evaluate(ctx context.Context, input agecheck.EvaluateInput) (agecheck.EvaluateOutput, error) {
	unit := input.Unit
	output := agecheck.EvaluateOutput{Videos: len(unit.VideoIDs)}

	for _, videoID := range unit.VideoIDs {
		verdicts := uc.evaluateVideo(ctx, unit, videoID)

		if err := uc.repo.CreateVerdicts(ctx, verdicts); err != nil {
			uc.l.Errorf(ctx, "agecheck.usecase.Evaluate: persisting %d verdicts for video %s failed: %v",
				len(verdicts), videoID, err)
			output.Failed++
			continue
		}
		output.Verdicts += len(verdicts)
	}

	uc.l.Infof(ctx, "agecheck.usecase.Evaluate: run %s batch %d/%d: videos=%d verdicts=%d failed=%d",
		unit.RunID, unit.BatchPart, unit.TotalBatchParts, output.Videos, output.Verdicts, output.Failed)

	if output.Failed > 0 {
		return output, agecheck.ErrPersistFailed
	}
	return output, nil
}

func (uc *implUseCase) evaluateVideo(ctx context.Context, unit model.AgeEvaluationUnit, videoID string) []model.AgeVerdict {
	now := time.Now().UTC()

	urls := uc.resolveEvaluationURLs(ctx, videoID)
	if len(urls) == 0 {
		uc.l.Warnf(ctx, "agecheck.usecase.evaluateVideo: no reachable thumbnails for video %s", videoID)
		return []model.AgeVerdict{{
			VideoID:     videoID,
			ModelID:     model.ModelIDNone,
			Description: "no thumbnails could be retrieved for this video",
			EvaluatedAt: now,
		}}
	}

	var verdicts []model.AgeVerdict
	for _, url := range urls {
		evaluations, err := uc.evaluator.EvaluateImage(ctx, gemini.EvaluationRequest{
			ImageURL:          url,
			SystemInstruction: unit.SystemInstruction,
			Prompt:            unit.Prompt,
		})
		if err != nil {
			uc.l.Warnf(ctx, "agecheck.usecase.evaluateVideo: model call failed for %s: %v", url, err)
			verdicts = append(verdicts, model.AgeVerdict{
				VideoID:      videoID,
				ThumbnailURL: url,
				ModelID:      uc.evaluator.Model(),
				Description:  fmt.Sprintf("evaluation failed: %v", err),
				EvaluatedAt:  now,
			})
			continue
		}
		for _, e := range evaluations {
			verdicts = append(verdicts, model.AgeVerdict{
				VideoID:      videoID,
				ThumbnailURL: url,
				ModelID:      uc.evaluator.Model(),
				Description:  e.Description,
				Age:          e.Age,
				EvaluatedAt:  now,
			})
		}
	}
	return verdicts
}

// resolveEvaluationURLs returns the best reachable thumbnail URL per slot.
func (uc *implUseCase) resolveEvaluationURLs(ctx context.Context, videoID string) []string {
	var urls []string
	for _, slot := range evaluationSlots {
		for _, size := range evaluationSizes {
			url := fmt.Sprintf(evaluationURLPattern, videoID, size, slot)
			if !uc.thumbnailReachable(ctx, url) {
				continue
			}
			urls = append(urls, url)
			break
		}
	}
	return urls
}

func (uc *implUseCase) thumbnailReachable(ctx context.Context, url string) bool {
	body, status, err := uc.httpClient.Download(ctx, url)
	if err != nil {
		return false
	}
	body.Close()
	return status == http.StatusOK
}
