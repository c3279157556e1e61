package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"videxcl-srv/internal/model"
	"videxcl-srv/internal/report"
	repo "videxcl-srv/internal/report/repository"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
)

type fakeAds struct {
	rows []adsapi.PlacementRow
	err  error

	lastReq adsapi.PlacementReportRequest
}

func (f *fakeAds) SearchPlacements(_ context.Context, req adsapi.PlacementReportRequest) ([]adsapi.PlacementRow, error) {
	f.lastReq = req
	return f.rows, f.err
}

func (f *fakeAds) SearchExclusions(_ context.Context, _ string) ([]adsapi.ExclusionRow, error) {
	return nil, nil
}

func (f *fakeAds) ListSharedSets(_ context.Context, _ string) ([]adsapi.SharedSet, error) {
	return nil, nil
}

func (f *fakeAds) AddExclusions(_ context.Context, _ adsapi.AddExclusionsRequest) (int, error) {
	return 0, nil
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func (f *fakeStore) Connect(context.Context) error { return nil }
func (f *fakeStore) HealthCheck(context.Context) error { return nil }
func (f *fakeStore) EnsureBucket(context.Context, string) error { return nil }
func (f *fakeStore) Close() error { return nil }
func (f *fakeStore) RemoveObject(_ context.Context, _, _ string) error { return nil }

func (f *fakeStore) ObjectExists(_ context.Context, _, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeStore) GetObject(_ context.Context, _, _ string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) PutObject(_ context.Context, req *minio.PutRequest) (*minio.ObjectInfo, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[req.ObjectName] = data
	return &minio.ObjectInfo{ObjectName: req.ObjectName, Size: int64(len(data))}, nil
}

type fakeReportRepo struct {
	existing map[string]bool

	replaceOpts []repo.ReplacePlacementsOptions
	replaceErr  error
}

func (f *fakeReportRepo) ReplacePlacements(_ context.Context, opt repo.ReplacePlacementsOptions) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaceOpts = append(f.replaceOpts, opt)
	return nil
}

func (f *fakeReportRepo) ExistingContentIDs(_ context.Context, ids []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, id := range ids {
		if f.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakeReportProducer struct {
	mu         sync.Mutex
	units      []model.ContentUnit
	dispatches []model.ThumbnailDispatch
	unitErr    map[string]error
}

func (f *fakeReportProducer) PublishContentUnit(_ context.Context, unit model.ContentUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.unitErr[unit.ContentID]; ok {
		return err
	}
	f.units = append(f.units, unit)
	return nil
}

func (f *fakeReportProducer) PublishThumbnailDispatch(_ context.Context, dispatch model.ThumbnailDispatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatches = append(f.dispatches, dispatch)
	return nil
}

func videoInput(accountID string) report.ExtractInput {
	return report.ExtractInput{
		Unit: model.AccountWorkUnit{
			RunID:       "run-1",
			AccountID:   accountID,
			CropObjects: true,
		},
		ContentType: model.ContentTypeVideo,
	}
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	t.Run("persists batch and fans out new content", func(t *testing.T) {
		ads := &fakeAds{rows: []adsapi.PlacementRow{
			{ContentID: "v1", Impressions: 100},
			{ContentID: "v2", Impressions: 50},
			{ContentID: "v1", Impressions: 10}, // duplicate id within the batch
		}}
		store := &fakeStore{}
		repository := &fakeReportRepo{existing: map[string]bool{"v2": true}}
		producer := &fakeReportProducer{}

		uc := New(l, repository, ads, store, producer, "videxcl-data", 7, 4)
		output, err := uc.Extract(ctx, videoInput("111"))
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}

		if output.Rows != 3 {
			t.Errorf("Rows = %d, want 3", output.Rows)
		}
		if len(repository.replaceOpts) != 1 {
			t.Fatalf("replace calls = %d, want 1", len(repository.replaceOpts))
		}
		opt := repository.replaceOpts[0]
		if opt.AccountID != "111" || opt.ContentType != model.ContentTypeVideo || len(opt.Records) != 3 {
			t.Errorf("replace opt = %+v", opt)
		}
		if len(store.objects) != 1 {
			t.Errorf("stored %d objects, want 1", len(store.objects))
		}

		// v1 duplicated in-batch, v2 already enriched: exactly one unit.
		if output.NewContent != 1 || len(producer.units) != 1 || producer.units[0].ContentID != "v1" {
			t.Errorf("fan-out = %d units %v, want only v1", output.NewContent, producer.units)
		}
		if !output.Dispatched || len(producer.dispatches) != 1 {
			t.Fatalf("dispatches = %v, want 1", producer.dispatches)
		}
		if !producer.dispatches[0].CropObjects {
			t.Error("dispatch should carry the crop flag")
		}
	})

	t.Run("empty report means no fan-out", func(t *testing.T) {
		ads := &fakeAds{}
		store := &fakeStore{}
		repository := &fakeReportRepo{}
		producer := &fakeReportProducer{}

		uc := New(l, repository, ads, store, producer, "videxcl-data", 7, 4)
		output, err := uc.Extract(ctx, videoInput("111"))
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if output.Rows != 0 || output.NewContent != 0 || output.Dispatched {
			t.Errorf("output = %+v, want empty", output)
		}
		if len(producer.units) != 0 || len(producer.dispatches) != 0 {
			t.Error("nothing should be published for an empty report")
		}
		// The empty batch still replaces the prior one for the key.
		if len(repository.replaceOpts) != 1 {
			t.Errorf("replace calls = %d, want 1", len(repository.replaceOpts))
		}
	})

	t.Run("unit filters joined into the query", func(t *testing.T) {
		ads := &fakeAds{}
		uc := New(l, &fakeReportRepo{}, ads, &fakeStore{}, &fakeReportProducer{}, "videxcl-data", 7, 4)

		input := videoInput("111")
		input.Unit.Filters = []string{"metrics.impressions > 100", "metrics.clicks > 10"}
		if _, err := uc.Extract(ctx, input); err != nil {
			t.Fatalf("Extract: %v", err)
		}
		want := "metrics.impressions > 100 AND metrics.clicks > 10"
		if ads.lastReq.Filters != want {
			t.Errorf("Filters = %q, want %q", ads.lastReq.Filters, want)
		}
	})

	t.Run("channel report never dispatches thumbnails", func(t *testing.T) {
		ads := &fakeAds{rows: []adsapi.PlacementRow{{ContentID: "c1"}}}
		producer := &fakeReportProducer{}

		uc := New(l, &fakeReportRepo{}, ads, &fakeStore{}, producer, "videxcl-data", 7, 4)
		output, err := uc.Extract(ctx, report.ExtractInput{
			Unit:        model.AccountWorkUnit{RunID: "run-1", AccountID: "111"},
			ContentType: model.ContentTypeChannel,
		})
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if output.Dispatched || len(producer.dispatches) != 0 {
			t.Error("channel runs must not dispatch thumbnail work")
		}
		if len(producer.units) != 1 || producer.units[0].ContentType != model.ContentTypeChannel {
			t.Errorf("units = %v", producer.units)
		}
	})

	t.Run("publish failure surfaces but siblings go through", func(t *testing.T) {
		ads := &fakeAds{rows: []adsapi.PlacementRow{{ContentID: "v1"}, {ContentID: "v2"}}}
		producer := &fakeReportProducer{unitErr: map[string]error{"v1": errors.New("broker down")}}

		uc := New(l, &fakeReportRepo{}, ads, &fakeStore{}, producer, "videxcl-data", 7, 4)
		output, err := uc.Extract(ctx, videoInput("111"))
		if err == nil {
			t.Fatal("expected an error for the failed publish")
		}
		if output.NewContent != 1 || len(producer.units) != 1 || producer.units[0].ContentID != "v2" {
			t.Errorf("fan-out = %d units %v, want v2 only", output.NewContent, producer.units)
		}
	})

	t.Run("report query failure", func(t *testing.T) {
		ads := &fakeAds{err: errors.New("quota exceeded")}
		uc := New(l, &fakeReportRepo{}, ads, &fakeStore{}, &fakeReportProducer{}, "videxcl-data", 7, 4)
		if _, err := uc.Extract(ctx, videoInput("111")); err != report.ErrReportQueryFailed {
			t.Errorf("err = %v, want ErrReportQueryFailed", err)
		}
	})

	t.Run("unknown content type", func(t *testing.T) {
		uc := New(l, &fakeReportRepo{}, &fakeAds{}, &fakeStore{}, &fakeReportProducer{}, "videxcl-data", 7, 4)
		input := videoInput("111")
		input.ContentType = "playlist"
		if _, err := uc.Extract(ctx, input); err != report.ErrUnknownContentType {
			t.Errorf("err = %v, want ErrUnknownContentType", err)
		}
	})
}
