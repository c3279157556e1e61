package thumbnail

import "errors"

var (
	ErrPersistFailed    = errors.New("thumbnail: persist failed")
	ErrPublishFailed    = errors.New("thumbnail: publish failed")
	ErrDownloadFailed   = errors.New("thumbnail: image download failed")
	ErrDecodeFailed     = errors.New("thumbnail: image decode failed")
	ErrEmptyCropRegion  = errors.New("thumbnail: empty crop region")
	ErrAnnotationFailed = errors.New("thumbnail: annotation failed")
)
