package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"videxcl-srv/internal/accounts"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/log"
)

type fakeSheets struct {
	rows [][]string
	err  error
}

func (f *fakeSheets) ReadRange(_ context.Context, _, _ string) ([][]string, error) {
	return f.rows, f.err
}

type fakeProducer struct {
	mu      sync.Mutex
	units   []model.AccountWorkUnit
	failFor map[string]error
}

func (f *fakeProducer) PublishWorkUnit(_ context.Context, unit model.AccountWorkUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[unit.AccountID]; ok {
		return err
	}
	f.units = append(f.units, unit)
	return nil
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	t.Run("emits one unit per enabled account", func(t *testing.T) {
		sheetsClient := &fakeSheets{rows: [][]string{
			{"111-111-1111", "true", "14", "metrics.impressions > 0", "yes", "no"},
			{"222-222-2222", "false"},
			{"333-333-3333", "enabled"},
		}}
		producer := &fakeProducer{}

		uc := New(l, sheetsClient, producer, "Accounts!A2:F", 4)
		output, err := uc.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Select: %v", err)
		}

		if output.Accounts != 2 || output.Emitted != 2 || output.Failed != 0 {
			t.Errorf("output = %+v, want 2 accounts, 2 emitted, 0 failed", output)
		}
		if output.RunID == "" {
			t.Error("RunID should be set")
		}
		if len(producer.units) != 2 {
			t.Fatalf("published %d units, want 2", len(producer.units))
		}
		for _, unit := range producer.units {
			if unit.RunID != output.RunID {
				t.Errorf("unit run id = %s, want %s", unit.RunID, output.RunID)
			}
			if unit.AccountID == "1111111111" {
				if unit.LookbackDays != 14 {
					t.Errorf("lookback = %d, want 14", unit.LookbackDays)
				}
				if len(unit.Filters) != 1 || unit.Filters[0] != "metrics.impressions > 0" {
					t.Errorf("filters = %v", unit.Filters)
				}
				if !unit.DetectObjects || unit.CropObjects {
					t.Errorf("flags = detect %v crop %v, want detect only", unit.DetectObjects, unit.CropObjects)
				}
			}
		}
	})

	t.Run("malformed rows are skipped", func(t *testing.T) {
		sheetsClient := &fakeSheets{rows: [][]string{
			{"", "true"},
			{"111", "true", "not-a-number"},
			{"222", "true"},
		}}
		producer := &fakeProducer{}

		uc := New(l, sheetsClient, producer, "Accounts!A2:F", 4)
		output, err := uc.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if output.Accounts != 1 || len(producer.units) != 1 || producer.units[0].AccountID != "222" {
			t.Errorf("output = %+v, units = %v", output, producer.units)
		}
	})

	t.Run("unreachable config source fails the run", func(t *testing.T) {
		sheetsClient := &fakeSheets{err: errors.New("api down")}
		producer := &fakeProducer{}

		uc := New(l, sheetsClient, producer, "Accounts!A2:F", 4)
		if _, err := uc.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"}); err != accounts.ErrConfigSourceUnreachable {
			t.Errorf("err = %v, want ErrConfigSourceUnreachable", err)
		}
		if len(producer.units) != 0 {
			t.Errorf("published %d units, want 0", len(producer.units))
		}
	})

	t.Run("one failed publish does not block siblings", func(t *testing.T) {
		sheetsClient := &fakeSheets{rows: [][]string{
			{"111", "true"},
			{"222", "true"},
			{"333", "true"},
		}}
		producer := &fakeProducer{failFor: map[string]error{"222": errors.New("broker down")}}

		uc := New(l, sheetsClient, producer, "Accounts!A2:F", 4)
		output, err := uc.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"})
		if err != accounts.ErrPublishFailed {
			t.Fatalf("err = %v, want ErrPublishFailed", err)
		}
		if output.Emitted != 2 || output.Failed != 1 {
			t.Errorf("output = %+v, want 2 emitted, 1 failed", output)
		}
	})

	t.Run("no enabled accounts", func(t *testing.T) {
		sheetsClient := &fakeSheets{rows: [][]string{{"111", "false"}}}
		producer := &fakeProducer{}

		uc := New(l, sheetsClient, producer, "Accounts!A2:F", 4)
		output, err := uc.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if output.Accounts != 0 || output.Emitted != 0 {
			t.Errorf("output = %+v, want zero", output)
		}
	})
}

func TestParseAccountRow(t *testing.T) {
	t.Run("dashes stripped from account id", func(t *testing.T) {
		cfg, err := parseAccountRow([]string{"123-456-7890", "true"})
		if err != nil {
			t.Fatalf("parseAccountRow: %v", err)
		}
		if cfg.AccountID != "1234567890" {
			t.Errorf("AccountID = %s, want 1234567890", cfg.AccountID)
		}
	})

	t.Run("multiple filters split on semicolon", func(t *testing.T) {
		cfg, err := parseAccountRow([]string{"111", "yes", "7", "metrics.impressions > 100; metrics.clicks > 10"})
		if err != nil {
			t.Fatalf("parseAccountRow: %v", err)
		}
		if len(cfg.Filters) != 2 || cfg.Filters[1] != "metrics.clicks > 10" {
			t.Errorf("Filters = %v", cfg.Filters)
		}
	})

	t.Run("short row uses defaults", func(t *testing.T) {
		cfg, err := parseAccountRow([]string{"111"})
		if err != nil {
			t.Fatalf("parseAccountRow: %v", err)
		}
		if cfg.Enabled || cfg.LookbackDays != 0 || cfg.Filters != nil {
			t.Errorf("cfg = %+v, want zero defaults", cfg)
		}
	})
}
