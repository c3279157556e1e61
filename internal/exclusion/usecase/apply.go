package usecase

import (
	"context"

	"videxcl-srv/internal/exclusion"
	repo "videxcl-srv/internal/exclusion/repository"
	"videxcl-srv/internal/model"
	"videxcl-srv/pkg/adsapi"
)

// Apply pushes matched placements to the account's shared exclusion list.
// The snapshot is refreshed before the diff so a stale copy cannot cause
// duplicate uploads, and again after so the stored state reflects the
// upload.
func (uc *implUseCase) Apply(ctx context.Context, input exclusion.ApplyInput) (exclusion.ApplyOutput, error) {
	output := exclusion.ApplyOutput{AccountID: input.AccountID}

	snap, err := uc.Snapshot(ctx, exclusion.SnapshotInput{
		Unit: model.AccountWorkUnit{AccountID: input.AccountID},
	})
	if err != nil {
		return output, err
	}
	output.Entries = snap.Entries

	candidates, err := uc.repo.ListNewExclusionCandidates(ctx, repo.ListNewCandidatesOptions{
		AccountID:     input.AccountID,
		ExclusionList: input.SharedSetName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.Apply: candidate query failed for account %s: %v", input.AccountID, err)
		return output, exclusion.ErrCandidateQueryFailed
	}

	var videoIDs, channelIDs []string
	for _, c := range candidates {
		switch c.ContentType {
		case model.ContentTypeVideo:
			videoIDs = append(videoIDs, c.ContentID)
		case model.ContentTypeChannel:
			channelIDs = append(channelIDs, c.ContentID)
		}
	}
	output.Videos = len(videoIDs)
	output.Channels = len(channelIDs)

	if len(videoIDs) == 0 && len(channelIDs) == 0 {
		uc.l.Infof(ctx, "exclusion.usecase.Apply: account %s: nothing new to exclude", input.AccountID)
		return output, nil
	}

	setID, err := uc.resolveSharedSet(ctx, input.AccountID, input.SharedSetName)
	if err != nil {
		return output, err
	}

	uploaded, err := uc.ads.AddExclusions(ctx, adsapi.AddExclusionsRequest{
		AccountID:   input.AccountID,
		SharedSetID: setID,
		VideoIDs:    videoIDs,
		ChannelIDs:  channelIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.Apply: upload failed for account %s: %v", input.AccountID, err)
		return output, exclusion.ErrUploadFailed
	}
	output.Uploaded = uploaded

	snap, err = uc.Snapshot(ctx, exclusion.SnapshotInput{
		Unit: model.AccountWorkUnit{AccountID: input.AccountID},
	})
	if err != nil {
		return output, err
	}
	output.Entries = snap.Entries

	uc.l.Infof(ctx, "exclusion.usecase.Apply: account %s: videos=%d channels=%d uploaded=%d entries=%d",
		input.AccountID, output.Videos, output.Channels, output.Uploaded, output.Entries)
	return output, nil
}

func (uc *implUseCase) resolveSharedSet(ctx context.Context, accountID, name string) (string, error) {
	sets, err := uc.ads.ListSharedSets(ctx, accountID)
	if err != nil {
		uc.l.Errorf(ctx, "exclusion.usecase.resolveSharedSet: shared set query failed for account %s: %v", accountID, err)
		return "", exclusion.ErrExclusionQueryFailed
	}
	for _, set := range sets {
		if set.Name == name {
			return set.ID, nil
		}
	}
	uc.l.Errorf(ctx, "exclusion.usecase.resolveSharedSet: account %s has no list named %q", accountID, name)
	return "", exclusion.ErrUnknownExclusionList
}
