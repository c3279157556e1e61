package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"videxcl-srv/internal/agecheck"
	"videxcl-srv/internal/model"
)

// Named sheet ranges holding the evaluation config. The prompt and system
// instruction are free text maintained next to the account roster, read
// fresh per run.
const (
	rangeSystemInstruction = "thumbnail_age_system_instruction"
	rangePrompt            = "thumbnail_age_evaluation_prompt"
	rangeSettings          = "configuration"

	settingEvaluationGate = "use_gemini_to_evaluate_age"
	gateEnabled           = "Enabled"
)

type evaluationConfig struct {
	systemInstruction string
	prompt            string
	enabled           bool
}

// Dispatch reads the evaluation config, selects videos without a verdict,
// and fans them out in batches. The sheet gate turns the whole run off
// without an error so a scheduler can keep triggering it.
func (uc *implUseCase) Dispatch(ctx context.Context, input agecheck.DispatchInput) (agecheck.DispatchOutput, error) {
	output := agecheck.DispatchOutput{RunID: input.RunID}

	cfg, err := uc.readEvaluationConfig(ctx, input.SheetID)
	if err != nil {
		return output, err
	}
	if !cfg.enabled {
		uc.l.Warnf(ctx, "agecheck.usecase.Dispatch: age evaluation is disabled in the config sheet, stopping run %s", input.RunID)
		output.Disabled = true
		return output, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.DispatchLimit
	}

	ids, err := uc.repo.ListUnevaluatedVideoIDs(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "agecheck.usecase.Dispatch: candidate query failed: %v", err)
		return output, agecheck.ErrPersistFailed
	}

	output.Candidates = len(ids)
	if len(ids) == 0 {
		uc.l.Infof(ctx, "agecheck.usecase.Dispatch: no unevaluated videos (run %s)", input.RunID)
		return output, nil
	}

	units := uc.batchUnits(input.RunID, cfg, ids)
	output.Batches = len(units)

	var (
		mu        sync.Mutex
		pubErrs   error
		published int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.WorkerLimit)

	for _, u := range units {
		unit := u
		g.Go(func() error {
			err := uc.producer.PublishEvaluationUnit(gctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(ctx, "agecheck.usecase.Dispatch: publish failed for batch %d/%d: %v",
					unit.BatchPart, unit.TotalBatchParts, err)
				pubErrs = multierr.Append(pubErrs, err)
				return nil
			}
			published++
			return nil
		})
	}
	_ = g.Wait()

	output.Published = published
	if pubErrs != nil {
		return output, agecheck.ErrPublishFailed
	}

	uc.l.Infof(ctx, "agecheck.usecase.Dispatch: run %s: candidates=%d batches=%d published=%d",
		input.RunID, output.Candidates, output.Batches, output.Published)
	return output, nil
}

// batchUnits splits the candidate ids into evaluation units of BatchSize.
func (uc *implUseCase) batchUnits(runID string, cfg evaluationConfig, ids []string) []model.AgeEvaluationUnit {
	total := (len(ids) + uc.cfg.BatchSize - 1) / uc.cfg.BatchSize

	units := make([]model.AgeEvaluationUnit, 0, total)
	for i := 0; i < len(ids); i += uc.cfg.BatchSize {
		end := i + uc.cfg.BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		units = append(units, model.AgeEvaluationUnit{
			RunID:             runID,
			SystemInstruction: cfg.systemInstruction,
			Prompt:            cfg.prompt,
			BatchPart:         i/uc.cfg.BatchSize + 1,
			TotalBatchParts:   total,
			VideoIDs:          ids[i:end],
		})
	}
	return units
}

func (uc *implUseCase) readEvaluationConfig(ctx context.Context, sheetID string) (evaluationConfig, error) {
	var cfg evaluationConfig

	instruction, err := uc.readCell(ctx, sheetID, rangeSystemInstruction)
	if err != nil {
		return cfg, err
	}
	prompt, err := uc.readCell(ctx, sheetID, rangePrompt)
	if err != nil {
		return cfg, err
	}
	if instruction == "" || prompt == "" {
		return cfg, agecheck.ErrIncompleteConfig
	}
	cfg.systemInstruction = instruction
	cfg.prompt = prompt

	rows, err := uc.sheets.ReadRange(ctx, sheetID, rangeSettings)
	if err != nil {
		uc.l.Errorf(ctx, "agecheck.usecase.readEvaluationConfig: config source read failed: %v", err)
		return cfg, agecheck.ErrConfigSourceUnreachable
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		if row[0] == settingEvaluationGate {
			cfg.enabled = strings.TrimSpace(row[1]) == gateEnabled
		}
	}
	return cfg, nil
}

// readCell returns the first cell of a named range.
func (uc *implUseCase) readCell(ctx context.Context, sheetID, rangeName string) (string, error) {
	rows, err := uc.sheets.ReadRange(ctx, sheetID, rangeName)
	if err != nil {
		uc.l.Errorf(ctx, "agecheck.usecase.readCell: config source read failed for %s: %v", rangeName, err)
		return "", agecheck.ErrConfigSourceUnreachable
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", nil
	}
	return strings.TrimSpace(rows[0][0]), nil
}
