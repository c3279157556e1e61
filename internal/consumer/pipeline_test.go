package consumer

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"videxcl-srv/internal/accounts"
	accountsUsecase "videxcl-srv/internal/accounts/usecase"
	"videxcl-srv/internal/enrich"
	enrichUsecase "videxcl-srv/internal/enrich/usecase"
	"videxcl-srv/internal/keyword"
	keywordUsecase "videxcl-srv/internal/keyword/usecase"
	"videxcl-srv/internal/model"
	"videxcl-srv/internal/report"
	reportRepo "videxcl-srv/internal/report/repository"
	reportUsecase "videxcl-srv/internal/report/usecase"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/ytapi"
)

const (
	testAccountsRange = "Accounts!A2:F"
	testKeywordsRange = "Keywords!A2:A"
)

// fakePipelineSheets serves the account roster and the keyword rules from
// one map, the way both live on the same config spreadsheet.
type fakePipelineSheets struct {
	ranges map[string][][]string
}

func (f *fakePipelineSheets) ReadRange(_ context.Context, _ string, rangeName string) ([][]string, error) {
	return f.ranges[rangeName], nil
}

type captureAccountsProducer struct {
	units []model.AccountWorkUnit
}

func (f *captureAccountsProducer) PublishWorkUnit(_ context.Context, unit model.AccountWorkUnit) error {
	f.units = append(f.units, unit)
	return nil
}

type fakePipelineAds struct {
	rows []adsapi.PlacementRow
}

func (f *fakePipelineAds) SearchPlacements(_ context.Context, _ adsapi.PlacementReportRequest) ([]adsapi.PlacementRow, error) {
	return f.rows, nil
}

func (f *fakePipelineAds) SearchExclusions(_ context.Context, _ string) ([]adsapi.ExclusionRow, error) {
	return nil, nil
}

func (f *fakePipelineAds) ListSharedSets(_ context.Context, _ string) ([]adsapi.SharedSet, error) {
	return nil, nil
}

func (f *fakePipelineAds) AddExclusions(_ context.Context, _ adsapi.AddExclusionsRequest) (int, error) {
	return 0, nil
}

type fakeReportRepo struct{}

func (f *fakeReportRepo) ReplacePlacements(_ context.Context, _ reportRepo.ReplacePlacementsOptions) error {
	return nil
}

func (f *fakeReportRepo) ExistingContentIDs(_ context.Context, _ []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

type captureReportProducer struct {
	contentUnits []model.ContentUnit
	dispatches   []model.ThumbnailDispatch
}

func (f *captureReportProducer) PublishContentUnit(_ context.Context, unit model.ContentUnit) error {
	f.contentUnits = append(f.contentUnits, unit)
	return nil
}

func (f *captureReportProducer) PublishThumbnailDispatch(_ context.Context, dispatch model.ThumbnailDispatch) error {
	f.dispatches = append(f.dispatches, dispatch)
	return nil
}

type fakePipelineStore struct {
	objects map[string][]byte
}

func (f *fakePipelineStore) Connect(context.Context) error { return nil }
func (f *fakePipelineStore) HealthCheck(context.Context) error { return nil }
func (f *fakePipelineStore) EnsureBucket(context.Context, string) error { return nil }
func (f *fakePipelineStore) Close() error { return nil }
func (f *fakePipelineStore) RemoveObject(_ context.Context, _, _ string) error { return nil }

func (f *fakePipelineStore) ObjectExists(_ context.Context, _, name string) (bool, error) {
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakePipelineStore) GetObject(_ context.Context, _, _ string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePipelineStore) PutObject(_ context.Context, req *minio.PutRequest) (*minio.ObjectInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[req.ObjectName] = data
	return &minio.ObjectInfo{ObjectName: req.ObjectName, Size: int64(len(data))}, nil
}

// contentStore backs both the enrichment writes and the keyword scan, so
// metadata appended by one stage is what the next stage reads.
type contentStore struct {
	contents []model.ContentMetadata
	matches  []model.KeywordMatch
}

func (s *contentStore) ContentExists(_ context.Context, contentID string) (bool, error) {
	for _, c := range s.contents {
		if c.ContentID == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (s *contentStore) CreateContent(_ context.Context, content model.ContentMetadata) error {
	s.contents = append(s.contents, content)
	return nil
}

func (s *contentStore) ListContent(_ context.Context) ([]model.ContentMetadata, error) {
	return s.contents, nil
}

func (s *contentStore) ReplaceMatches(_ context.Context, matches []model.KeywordMatch) error {
	s.matches = matches
	return nil
}

type fakeContentAPI struct {
	videos []ytapi.Video
}

func (f *fakeContentAPI) ListVideos(_ context.Context, _ []string) ([]ytapi.Video, error) {
	return f.videos, nil
}

func (f *fakeContentAPI) ListChannels(_ context.Context, _ []string) ([]ytapi.Channel, error) {
	return nil, nil
}

type fakeClaimCache struct{}

func (f *fakeClaimCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeClaimCache) SetNX(_ context.Context, _ string, _ interface{}, _ time.Duration) (bool, error) {
	return true, nil
}

func (f *fakeClaimCache) Get(_ context.Context, _ string) (string, error) { return "", nil }
func (f *fakeClaimCache) Delete(_ context.Context, _ ...string) error { return nil }
func (f *fakeClaimCache) Exists(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *fakeClaimCache) Close() error { return nil }
func (f *fakeClaimCache) Ping(_ context.Context) error { return nil }

// TestPipelineEndToEnd drives one video through the four batch stages with
// the real usecases and fake backends: the roster fans out an account, the
// report run discovers the video, enrichment appends its metadata, and the
// match engine flags it. Each stage consumes exactly the payload the
// previous one produced.
func TestPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	sheetsClient := &fakePipelineSheets{ranges: map[string][][]string{
		testAccountsRange: {
			{"111-222-3333", "TRUE", "7", "metrics.impressions > 100", "TRUE", "FALSE"},
		},
		testKeywordsRange: {
			{"spam"},
		},
	}}

	// Stage 1: account fan-out.
	accountsProd := &captureAccountsProducer{}
	accountsUC := accountsUsecase.New(l, sheetsClient, accountsProd, testAccountsRange, 1)

	selectOut, err := accountsUC.Select(ctx, accounts.SelectInput{SheetID: "sheet-1"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if selectOut.Emitted != 1 || len(accountsProd.units) != 1 {
		t.Fatalf("emitted = %d, units = %d, want one work unit", selectOut.Emitted, len(accountsProd.units))
	}
	workUnit := accountsProd.units[0]
	if workUnit.AccountID != "1112223333" {
		t.Errorf("AccountID = %s, want the dashes stripped", workUnit.AccountID)
	}

	// Stage 2: placement report extraction, consuming stage 1's payload.
	reportProd := &captureReportProducer{}
	reportUC := reportUsecase.New(l, &fakeReportRepo{},
		&fakePipelineAds{rows: []adsapi.PlacementRow{
			{ContentID: "v1", DisplayName: "spam compilation", Impressions: 500},
		}},
		&fakePipelineStore{}, reportProd, "videxcl-data", 7, 1)

	extractOut, err := reportUC.Extract(ctx, report.ExtractInput{
		Unit:        workUnit,
		ContentType: model.ContentTypeVideo,
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if extractOut.Rows != 1 || extractOut.NewContent != 1 {
		t.Fatalf("extract output = %+v, want one new video", extractOut)
	}
	if len(reportProd.contentUnits) != 1 {
		t.Fatalf("content units = %d, want 1", len(reportProd.contentUnits))
	}
	contentUnit := reportProd.contentUnits[0]
	if contentUnit.ContentID != "v1" || contentUnit.ContentType != model.ContentTypeVideo {
		t.Errorf("content unit = %+v", contentUnit)
	}
	if contentUnit.RunID != workUnit.RunID {
		t.Errorf("content unit run id = %s, want %s carried through", contentUnit.RunID, workUnit.RunID)
	}
	if len(reportProd.dispatches) != 1 {
		t.Errorf("thumbnail dispatches = %d, want the video run to trigger one", len(reportProd.dispatches))
	}

	// Stage 3: metadata enrichment, consuming stage 2's payload.
	store := &contentStore{}
	enrichUC := enrichUsecase.New(l, store,
		&fakeContentAPI{videos: []ytapi.Video{
			{ID: "v1", Title: "spam compilation", ChannelID: "ch-1"},
		}},
		&fakeClaimCache{}, time.Hour)

	enrichOut, err := enrichUC.Enrich(ctx, enrich.EnrichInput{Unit: contentUnit})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if enrichOut.Skipped {
		t.Fatal("enrichment skipped a brand new video")
	}
	if len(store.contents) != 1 || store.contents[0].Title != "spam compilation" {
		t.Fatalf("contents = %+v, want the fetched title stored", store.contents)
	}

	// Stage 4: keyword match engine over the enriched store.
	keywordUC := keywordUsecase.New(l, store, sheetsClient, testKeywordsRange)

	runOut, err := keywordUC.Run(ctx, keyword.RunInput{SheetID: "sheet-1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if runOut.Keywords != 1 || runOut.Scanned != 1 || runOut.Matches != 1 {
		t.Fatalf("run output = %+v, want one match from one record", runOut)
	}
	match := store.matches[0]
	if match.ContentID != "v1" || match.MatchedField != model.MatchFieldTitle || match.Keyword != "spam" {
		t.Errorf("match = %+v, want v1 flagged on the title by %q", match, "spam")
	}
}
