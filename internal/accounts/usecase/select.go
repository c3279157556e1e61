package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"videxcl-srv/internal/accounts"
	"videxcl-srv/internal/model"
)

// Select reads the account config source and emits one work unit per enabled
// account. An unreachable config source fails the whole run with no partial
// emission; a failed publish for one account never blocks its siblings.
func (uc *implUseCase) Select(ctx context.Context, input accounts.SelectInput) (accounts.SelectOutput, error) {
	rows, err := uc.sheets.ReadRange(ctx, input.SheetID, uc.accountsRange)
	if err != nil {
		uc.l.Errorf(ctx, "accounts.usecase.Select: failed to read config source: %v", err)
		return accounts.SelectOutput{}, accounts.ErrConfigSourceUnreachable
	}

	enabled := make([]model.AccountConfig, 0, len(rows))
	for i, row := range rows {
		cfg, err := parseAccountRow(row)
		if err != nil {
			uc.l.Warnf(ctx, "accounts.usecase.Select: skipping row %d: %v", i, err)
			continue
		}
		if !cfg.Enabled {
			continue
		}
		enabled = append(enabled, cfg)
	}

	output := accounts.SelectOutput{
		RunID:    uuid.NewString(),
		Accounts: len(enabled),
	}
	if len(enabled) == 0 {
		uc.l.Infof(ctx, "accounts.usecase.Select: no enabled accounts, nothing to emit")
		return output, nil
	}

	dispatchedAt := time.Now()

	var (
		mu      sync.Mutex
		pubErrs error
		emitted int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workerLimit)

	for i := range enabled {
		cfg := enabled[i]
		g.Go(func() error {
			unit := model.AccountWorkUnit{
				RunID:         output.RunID,
				AccountID:     cfg.AccountID,
				Filters:       cfg.Filters,
				LookbackDays:  cfg.LookbackDays,
				DetectObjects: cfg.DetectObjects,
				CropObjects:   cfg.CropObjects,
				DispatchedAt:  dispatchedAt,
			}
			err := uc.producer.PublishWorkUnit(gctx, unit)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Errorf(ctx, "accounts.usecase.Select: publish failed for account %s: %v", cfg.AccountID, err)
				pubErrs = multierr.Append(pubErrs, err)
				return nil
			}
			emitted++
			return nil
		})
	}
	_ = g.Wait()

	output.Emitted = emitted
	output.Failed = output.Accounts - emitted

	if pubErrs != nil {
		uc.l.Errorf(ctx, "accounts.usecase.Select: %d/%d publishes failed: %v", output.Failed, output.Accounts, pubErrs)
		return output, accounts.ErrPublishFailed
	}

	uc.l.Infof(ctx, "accounts.usecase.Select: emitted %d work units (run %s)", emitted, output.RunID)
	return output, nil
}
