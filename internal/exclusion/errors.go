package exclusion

import "errors"

var (
	ErrExclusionQueryFailed = errors.New("exclusion: exclusion query failed")
	ErrPersistFailed        = errors.New("exclusion: persist failed")
	ErrCandidateQueryFailed = errors.New("exclusion: candidate query failed")
	ErrUnknownExclusionList = errors.New("exclusion: exclusion list not found on account")
	ErrUploadFailed         = errors.New("exclusion: exclusion upload failed")
)
