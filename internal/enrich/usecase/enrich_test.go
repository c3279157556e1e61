package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"videxcl-srv/internal/enrich"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/ytapi"
)

type fakeEnrichRepo struct {
	existing  map[string]bool
	existsErr error

	created   []model.ContentMetadata
	createErr error
}

func (f *fakeEnrichRepo) ContentExists(_ context.Context, contentID string) (bool, error) {
	return f.existing[contentID], f.existsErr
}

func (f *fakeEnrichRepo) CreateContent(_ context.Context, content model.ContentMetadata) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, content)
	return nil
}

type fakeContentAPI struct {
	videos   []ytapi.Video
	channels []ytapi.Channel
	err      error

	videoCalls int
}

func (f *fakeContentAPI) ListVideos(_ context.Context, _ []string) ([]ytapi.Video, error) {
	f.videoCalls++
	return f.videos, f.err
}

func (f *fakeContentAPI) ListChannels(_ context.Context, _ []string) ([]ytapi.Channel, error) {
	return f.channels, f.err
}

type fakeRedis struct {
	keys     map[string]bool
	setNXErr error
	deleted  []string
}

func (f *fakeRedis) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if f.setNXErr != nil {
		return false, f.setNXErr
	}
	if f.keys == nil {
		f.keys = make(map[string]bool)
	}
	if f.keys[key] {
		return false, nil
	}
	f.keys[key] = true
	return true, nil
}

func (f *fakeRedis) Get(_ context.Context, _ string) (string, error) { return "", nil }

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	for _, k := range keys {
		delete(f.keys, k)
	}
	return nil
}

func (f *fakeRedis) Exists(_ context.Context, key string) (bool, error) { return f.keys[key], nil }
func (f *fakeRedis) Close() error { return nil }
func (f *fakeRedis) Ping(_ context.Context) error { return nil }

func videoUnit(id string) enrich.EnrichInput {
	return enrich.EnrichInput{Unit: model.ContentUnit{
		RunID:       "run-1",
		ContentID:   id,
		ContentType: model.ContentTypeVideo,
	}}
}

func TestEnrich(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	t.Run("appends metadata for a new id", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{videos: []ytapi.Video{{
			ID:        "v1",
			Title:     "spam compilation",
			Tags:      []string{"comedy"},
			ChannelID: "ch-1",
		}}}
		redisClient := &fakeRedis{}

		uc := New(l, repo, api, redisClient, time.Hour)
		output, err := uc.Enrich(ctx, videoUnit("v1"))
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if output.Skipped {
			t.Error("should not be skipped")
		}
		if len(repo.created) != 1 {
			t.Fatalf("created %d rows, want 1", len(repo.created))
		}
		got := repo.created[0]
		if got.ContentID != "v1" || got.ContentType != model.ContentTypeVideo || got.Title != "spam compilation" {
			t.Errorf("created = %+v", got)
		}
		if got.FetchedAt.IsZero() {
			t.Error("FetchedAt should be stamped")
		}
	})

	t.Run("existing row means no external call", func(t *testing.T) {
		repo := &fakeEnrichRepo{existing: map[string]bool{"v1": true}}
		api := &fakeContentAPI{}

		uc := New(l, repo, api, &fakeRedis{}, time.Hour)
		output, err := uc.Enrich(ctx, videoUnit("v1"))
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if !output.Skipped {
			t.Error("should be skipped")
		}
		if api.videoCalls != 0 {
			t.Errorf("video calls = %d, want 0", api.videoCalls)
		}
	})

	t.Run("claim held by another worker", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{videos: []ytapi.Video{{ID: "v1"}}}
		redisClient := &fakeRedis{keys: map[string]bool{"videxcl:enrich:v1": true}}

		uc := New(l, repo, api, redisClient, time.Hour)
		output, err := uc.Enrich(ctx, videoUnit("v1"))
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if !output.Skipped || len(repo.created) != 0 {
			t.Errorf("output = %+v, created = %v", output, repo.created)
		}
	})

	t.Run("redis failure degrades to plain existence check", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{videos: []ytapi.Video{{ID: "v1"}}}
		redisClient := &fakeRedis{setNXErr: errors.New("connection refused")}

		uc := New(l, repo, api, redisClient, time.Hour)
		output, err := uc.Enrich(ctx, videoUnit("v1"))
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if output.Skipped || len(repo.created) != 1 {
			t.Errorf("output = %+v, created = %v", output, repo.created)
		}
	})

	t.Run("missing upstream record is not retried", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{} // empty response

		uc := New(l, repo, api, &fakeRedis{}, time.Hour)
		output, err := uc.Enrich(ctx, videoUnit("gone"))
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if !output.Skipped || len(repo.created) != 0 {
			t.Errorf("output = %+v, created = %v", output, repo.created)
		}
	})

	t.Run("fetch failure releases the claim", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{err: errors.New("quota exceeded")}
		redisClient := &fakeRedis{}

		uc := New(l, repo, api, redisClient, time.Hour)
		if _, err := uc.Enrich(ctx, videoUnit("v1")); err != enrich.ErrFetchFailed {
			t.Fatalf("err = %v, want ErrFetchFailed", err)
		}
		if len(redisClient.deleted) != 1 || redisClient.deleted[0] != "videxcl:enrich:v1" {
			t.Errorf("deleted = %v, want the claim key", redisClient.deleted)
		}
	})

	t.Run("persist failure releases the claim", func(t *testing.T) {
		repo := &fakeEnrichRepo{createErr: errors.New("disk full")}
		api := &fakeContentAPI{videos: []ytapi.Video{{ID: "v1"}}}
		redisClient := &fakeRedis{}

		uc := New(l, repo, api, redisClient, time.Hour)
		if _, err := uc.Enrich(ctx, videoUnit("v1")); err != enrich.ErrPersistFailed {
			t.Fatalf("err = %v, want ErrPersistFailed", err)
		}
		if len(redisClient.deleted) != 1 {
			t.Errorf("deleted = %v, want the claim key", redisClient.deleted)
		}
	})

	t.Run("channel metadata", func(t *testing.T) {
		repo := &fakeEnrichRepo{}
		api := &fakeContentAPI{channels: []ytapi.Channel{{
			ID:              "ch-1",
			Title:           "Some Channel",
			Country:         "US",
			SubscriberCount: 1000,
		}}}

		uc := New(l, repo, api, &fakeRedis{}, time.Hour)
		input := enrich.EnrichInput{Unit: model.ContentUnit{
			RunID:       "run-1",
			ContentID:   "ch-1",
			ContentType: model.ContentTypeChannel,
		}}
		if _, err := uc.Enrich(ctx, input); err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if len(repo.created) != 1 || repo.created[0].SubscriberCount != 1000 {
			t.Errorf("created = %v", repo.created)
		}
	})
}
