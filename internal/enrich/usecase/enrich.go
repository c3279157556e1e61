package usecase

import (
	"context"
	"fmt"
	"time"

	"videxcl-srv/internal/enrich"
	"videxcl-srv/internal/model"
)

// Enrich fetches and appends metadata for one content id, at most once per
// id. The existence check runs before any external call; a present row is a
// no-op. A Redis claim narrows the check-then-act race between concurrent
// workers on the same new id; losing Redis degrades to the plain existence
// check rather than blocking the fetch.
func (uc *implUseCase) Enrich(ctx context.Context, input enrich.EnrichInput) (enrich.EnrichOutput, error) {
	contentID := input.Unit.ContentID
	output := enrich.EnrichOutput{ContentID: contentID}

	exists, err := uc.repo.ContentExists(ctx, contentID)
	if err != nil {
		uc.l.Errorf(ctx, "enrich.usecase.Enrich: existence check failed for %s: %v", contentID, err)
		return output, enrich.ErrPersistFailed
	}
	if exists {
		uc.l.Debugf(ctx, "enrich.usecase.Enrich: %s already enriched, skipping", contentID)
		output.Skipped = true
		return output, nil
	}

	claimed, claimKey := uc.claim(ctx, contentID)
	if !claimed {
		uc.l.Infof(ctx, "enrich.usecase.Enrich: %s claimed by another worker, skipping", contentID)
		output.Skipped = true
		return output, nil
	}

	content, err := uc.fetch(ctx, input.Unit)
	if err != nil {
		uc.releaseClaim(ctx, claimKey)
		return output, err
	}
	if content == nil {
		// Upstream has no record for this id; nothing to append and
		// nothing to retry.
		uc.l.Warnf(ctx, "enrich.usecase.Enrich: no upstream metadata for %s, skipping", contentID)
		output.Skipped = true
		return output, nil
	}

	if err := uc.repo.CreateContent(ctx, *content); err != nil {
		uc.l.Errorf(ctx, "enrich.usecase.Enrich: append failed for %s: %v", contentID, err)
		uc.releaseClaim(ctx, claimKey)
		return output, enrich.ErrPersistFailed
	}

	uc.l.Infof(ctx, "enrich.usecase.Enrich: appended metadata for %s %s", content.ContentType, contentID)
	return output, nil
}

// claim takes the enrichment claim for a content id. Returns claimed=true
// when this worker holds the claim; Redis failures degrade to claimed=true
// so the fetch is never blocked on the cache.
func (uc *implUseCase) claim(ctx context.Context, contentID string) (bool, string) {
	key := fmt.Sprintf("videxcl:enrich:%s", contentID)
	ok, err := uc.redis.SetNX(ctx, key, time.Now().Format(time.RFC3339), uc.claimTTL)
	if err != nil {
		uc.l.Warnf(ctx, "enrich.usecase.claim: redis unavailable, proceeding without claim: %v", err)
		return true, key
	}
	return ok, key
}

func (uc *implUseCase) releaseClaim(ctx context.Context, key string) {
	if err := uc.redis.Delete(ctx, key); err != nil {
		uc.l.Warnf(ctx, "enrich.usecase.releaseClaim: failed to release %s: %v", key, err)
	}
}

func (uc *implUseCase) fetch(ctx context.Context, unit model.ContentUnit) (*model.ContentMetadata, error) {
	fetchedAt := time.Now()

	switch unit.ContentType {
	case model.ContentTypeVideo:
		videos, err := uc.content.ListVideos(ctx, []string{unit.ContentID})
		if err != nil {
			uc.l.Errorf(ctx, "enrich.usecase.fetch: video fetch failed for %s: %v", unit.ContentID, err)
			return nil, enrich.ErrFetchFailed
		}
		if len(videos) == 0 {
			return nil, nil
		}
		v := videos[0]
		return &model.ContentMetadata{
			ContentID:    v.ID,
			ContentType:  model.ContentTypeVideo,
			Title:        v.Title,
			Description:  v.Description,
			Tags:         v.Tags,
			ChannelID:    v.ChannelID,
			Duration:     v.Duration,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			PublishedAt:  v.PublishedAt,
			FetchedAt:    fetchedAt,
		}, nil

	case model.ContentTypeChannel:
		channels, err := uc.content.ListChannels(ctx, []string{unit.ContentID})
		if err != nil {
			uc.l.Errorf(ctx, "enrich.usecase.fetch: channel fetch failed for %s: %v", unit.ContentID, err)
			return nil, enrich.ErrFetchFailed
		}
		if len(channels) == 0 {
			return nil, nil
		}
		ch := channels[0]
		return &model.ContentMetadata{
			ContentID:       ch.ID,
			ContentType:     model.ContentTypeChannel,
			Title:           ch.Title,
			Description:     ch.Description,
			Tags:            ch.Tags,
			Country:         ch.Country,
			ViewCount:       ch.ViewCount,
			SubscriberCount: ch.SubscriberCount,
			VideoCount:      ch.VideoCount,
			PublishedAt:     ch.PublishedAt,
			FetchedAt:       fetchedAt,
		}, nil

	default:
		return nil, enrich.ErrUnknownContentType
	}
}
