package enrich

import "errors"

var (
	ErrUnknownContentType = errors.New("enrich: unknown content type")
	ErrFetchFailed        = errors.New("enrich: metadata fetch failed")
	ErrPersistFailed      = errors.New("enrich: persist failed")
)
