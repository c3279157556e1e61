package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"videxcl-srv/internal/agecheck"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/gemini"
	"videxcl-srv/pkg/log"
)

type fakeAgeRepo struct {
	unevaluated []string
	listLimit   int
	listErr     error

	verdicts   []model.AgeVerdict
	createErr  map[string]error
	createdFor []string
}

func (f *fakeAgeRepo) ListUnevaluatedVideoIDs(_ context.Context, limit int) ([]string, error) {
	f.listLimit = limit
	return f.unevaluated, f.listErr
}

func (f *fakeAgeRepo) CreateVerdicts(_ context.Context, verdicts []model.AgeVerdict) error {
	if len(verdicts) == 0 {
		return nil
	}
	if err, ok := f.createErr[verdicts[0].VideoID]; ok {
		return err
	}
	f.verdicts = append(f.verdicts, verdicts...)
	f.createdFor = append(f.createdFor, verdicts[0].VideoID)
	return nil
}

// fakeConfigSheet serves named ranges from a map.
type fakeConfigSheet struct {
	ranges map[string][][]string
	err    error
}

func (f *fakeConfigSheet) ReadRange(_ context.Context, _ string, rangeName string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges[rangeName], nil
}

func enabledConfigSheet() *fakeConfigSheet {
	return &fakeConfigSheet{ranges: map[string][][]string{
		rangeSystemInstruction: {{"You judge thumbnails."}},
		rangePrompt:            {{"Estimate the minimum viewer age."}},
		rangeSettings:          {{"use_gemini_to_evaluate_age", "Enabled"}},
	}}
}

// fakeThumbClient serves an allow-listed set of thumbnail URLs and 404s the
// rest.
type fakeThumbClient struct {
	reachable map[string]bool
}

func (f *fakeThumbClient) Get(_ context.Context, _ string, _ map[string]string) ([]byte, int, error) {
	return nil, http.StatusNotFound, nil
}

func (f *fakeThumbClient) Post(_ context.Context, _ string, _ interface{}, _ map[string]string) ([]byte, int, error) {
	return nil, http.StatusNotFound, nil
}

func (f *fakeThumbClient) Download(_ context.Context, url string) (io.ReadCloser, int, error) {
	if !f.reachable[url] {
		return io.NopCloser(bytes.NewReader(nil)), http.StatusNotFound, nil
	}
	return io.NopCloser(bytes.NewReader([]byte{0xff})), http.StatusOK, nil
}

type fakeEvaluator struct {
	mu    sync.Mutex
	items []gemini.AgeEvaluation
	err   error
	urls  []string
}

func (f *fakeEvaluator) EvaluateImage(_ context.Context, req gemini.EvaluationRequest) ([]gemini.AgeEvaluation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, req.ImageURL)
	return f.items, f.err
}

func (f *fakeEvaluator) Model() string { return "test-model" }

type fakeAgeProducer struct {
	mu       sync.Mutex
	units    []model.AgeEvaluationUnit
	failPart int
}

func (f *fakeAgeProducer) PublishEvaluationUnit(_ context.Context, unit model.AgeEvaluationUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPart != 0 && unit.BatchPart == f.failPart {
		return errors.New("broker down")
	}
	f.units = append(f.units, unit)
	return nil
}

func ageThumbURL(videoID, name string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", videoID, name)
}

func newTestUseCase(repo *fakeAgeRepo, ev *fakeEvaluator, client *fakeThumbClient, sheet *fakeConfigSheet, producer *fakeAgeProducer) agecheck.UseCase {
	return New(log.NewNop(), repo, ev, client, sheet, producer, Config{
		DispatchLimit: 500,
		BatchSize:     5,
	})
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("batches candidates with part numbering", func(t *testing.T) {
		repo := &fakeAgeRepo{unevaluated: []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7"}}
		producer := &fakeAgeProducer{}
		uc := newTestUseCase(repo, &fakeEvaluator{}, &fakeThumbClient{}, enabledConfigSheet(), producer)

		output, err := uc.Dispatch(ctx, agecheck.DispatchInput{RunID: "run-1", SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if output.Candidates != 7 || output.Batches != 2 || output.Published != 2 {
			t.Errorf("output = %+v, want 7 candidates in 2 batches", output)
		}
		if len(producer.units) != 2 {
			t.Fatalf("units = %d, want 2", len(producer.units))
		}
		first, second := producer.units[0], producer.units[1]
		if first.BatchPart == 2 {
			first, second = second, first
		}
		if first.BatchPart != 1 || first.TotalBatchParts != 2 || len(first.VideoIDs) != 5 {
			t.Errorf("first unit = %+v", first)
		}
		if second.BatchPart != 2 || len(second.VideoIDs) != 2 {
			t.Errorf("second unit = %+v", second)
		}
		if first.Prompt == "" || first.SystemInstruction == "" {
			t.Errorf("unit is missing the evaluation config: %+v", first)
		}
	})

	t.Run("sheet gate stops the run without an error", func(t *testing.T) {
		sheet := enabledConfigSheet()
		sheet.ranges[rangeSettings] = [][]string{{"use_gemini_to_evaluate_age", "Disabled"}}
		repo := &fakeAgeRepo{unevaluated: []string{"v1"}}
		producer := &fakeAgeProducer{}
		uc := newTestUseCase(repo, &fakeEvaluator{}, &fakeThumbClient{}, sheet, producer)

		output, err := uc.Dispatch(ctx, agecheck.DispatchInput{RunID: "run-1", SheetID: "sheet-1"})
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if !output.Disabled || len(producer.units) != 0 {
			t.Errorf("output = %+v, units = %d, want a disabled no-op", output, len(producer.units))
		}
	})

	t.Run("missing prompt is rejected", func(t *testing.T) {
		sheet := enabledConfigSheet()
		sheet.ranges[rangePrompt] = nil
		uc := newTestUseCase(&fakeAgeRepo{}, &fakeEvaluator{}, &fakeThumbClient{}, sheet, &fakeAgeProducer{})

		if _, err := uc.Dispatch(ctx, agecheck.DispatchInput{RunID: "run-1", SheetID: "sheet-1"}); err != agecheck.ErrIncompleteConfig {
			t.Fatalf("err = %v, want ErrIncompleteConfig", err)
		}
	})

	t.Run("unreachable sheet surfaces", func(t *testing.T) {
		sheet := &fakeConfigSheet{err: errors.New("503")}
		uc := newTestUseCase(&fakeAgeRepo{}, &fakeEvaluator{}, &fakeThumbClient{}, sheet, &fakeAgeProducer{})

		if _, err := uc.Dispatch(ctx, agecheck.DispatchInput{RunID: "run-1", SheetID: "sheet-1"}); err != agecheck.ErrConfigSourceUnreachable {
			t.Fatalf("err = %v, want ErrConfigSourceUnreachable", err)
		}
	})

	t.Run("partial publish failure surfaces", func(t *testing.T) {
		repo := &fakeAgeRepo{unevaluated: []string{"v1", "v2", "v3", "v4", "v5", "v6"}}
		producer := &fakeAgeProducer{failPart: 2}
		uc := newTestUseCase(repo, &fakeEvaluator{}, &fakeThumbClient{}, enabledConfigSheet(), producer)

		output, err := uc.Dispatch(ctx, agecheck.DispatchInput{RunID: "run-1", SheetID: "sheet-1"})
		if err != agecheck.ErrPublishFailed {
			t.Fatalf("err = %v, want ErrPublishFailed", err)
		}
		if output.Published != 1 || len(producer.units) != 1 {
			t.Errorf("output = %+v, units = %d, want the surviving batch", output, len(producer.units))
		}
	})
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	unit := model.AgeEvaluationUnit{
		RunID:             "run-1",
		SystemInstruction: "You judge thumbnails.",
		Prompt:            "Estimate the minimum viewer age.",
		BatchPart:         1,
		TotalBatchParts:   1,
	}

	t.Run("writes one verdict per model answer", func(t *testing.T) {
		u := unit
		u.VideoIDs = []string{"v1"}
		// The main slot falls back past maxresdefault; the first auto frame
		// has its best candidate; the other frames have nothing.
		client := &fakeThumbClient{reachable: map[string]bool{
			ageThumbURL("v1", "hqdefault"): true,
			ageThumbURL("v1", "sd1"):       true,
		}}
		ev := &fakeEvaluator{items: []gemini.AgeEvaluation{
			{Description: "cartoon violence", Age: 13},
		}}
		repo := &fakeAgeRepo{}
		uc := newTestUseCase(repo, ev, client, enabledConfigSheet(), &fakeAgeProducer{})

		output, err := uc.Evaluate(ctx, agecheck.EvaluateInput{Unit: u})
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if output.Videos != 1 || output.Verdicts != 2 || output.Failed != 0 {
			t.Errorf("output = %+v, want 2 verdicts for 1 video", output)
		}
		if len(ev.urls) != 2 {
			t.Fatalf("model calls = %v, want the best URL per slot", ev.urls)
		}
		for _, v := range repo.verdicts {
			if v.ModelID != "test-model" || v.Age != 13 || !strings.Contains(v.Description, "cartoon") {
				t.Errorf("verdict = %+v", v)
			}
			if v.EvaluatedAt.IsZero() {
				t.Errorf("verdict %s has no timestamp", v.ThumbnailURL)
			}
		}
	})

	t.Run("video without thumbnails still gets a row", func(t *testing.T) {
		u := unit
		u.VideoIDs = []string{"gone"}
		repo := &fakeAgeRepo{}
		uc := newTestUseCase(repo, &fakeEvaluator{}, &fakeThumbClient{}, enabledConfigSheet(), &fakeAgeProducer{})

		output, err := uc.Evaluate(ctx, agecheck.EvaluateInput{Unit: u})
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if output.Verdicts != 1 || len(repo.verdicts) != 1 {
			t.Fatalf("output = %+v, verdicts = %v", output, repo.verdicts)
		}
		v := repo.verdicts[0]
		if v.VideoID != "gone" || v.ModelID != model.ModelIDNone || v.ThumbnailURL != "" {
			t.Errorf("verdict = %+v, want a NONE marker row", v)
		}
	})

	t.Run("model failure is recorded, not retried", func(t *testing.T) {
		u := unit
		u.VideoIDs = []string{"v1"}
		client := &fakeThumbClient{reachable: map[string]bool{
			ageThumbURL("v1", "maxresdefault"): true,
		}}
		ev := &fakeEvaluator{err: errors.New("quota exceeded")}
		repo := &fakeAgeRepo{}
		uc := newTestUseCase(repo, ev, client, enabledConfigSheet(), &fakeAgeProducer{})

		output, err := uc.Evaluate(ctx, agecheck.EvaluateInput{Unit: u})
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if output.Verdicts != 1 || len(repo.verdicts) != 1 {
			t.Fatalf("output = %+v, verdicts = %v", output, repo.verdicts)
		}
		v := repo.verdicts[0]
		if !strings.Contains(v.Description, "quota exceeded") || v.Age != 0 {
			t.Errorf("verdict = %+v, want the failure recorded", v)
		}
	})

	t.Run("persist failure is isolated per video", func(t *testing.T) {
		u := unit
		u.VideoIDs = []string{"v1", "v2"}
		client := &fakeThumbClient{reachable: map[string]bool{
			ageThumbURL("v1", "maxresdefault"): true,
			ageThumbURL("v2", "maxresdefault"): true,
		}}
		ev := &fakeEvaluator{items: []gemini.AgeEvaluation{{Description: "fine", Age: 0}}}
		repo := &fakeAgeRepo{createErr: map[string]error{"v1": errors.New("db down")}}
		uc := newTestUseCase(repo, ev, client, enabledConfigSheet(), &fakeAgeProducer{})

		output, err := uc.Evaluate(ctx, agecheck.EvaluateInput{Unit: u})
		if err != agecheck.ErrPersistFailed {
			t.Fatalf("err = %v, want ErrPersistFailed", err)
		}
		if output.Failed != 1 || len(repo.createdFor) != 1 || repo.createdFor[0] != "v2" {
			t.Errorf("output = %+v, created = %v, want v2 to survive", output, repo.createdFor)
		}
	})
}
