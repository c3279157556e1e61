package keyword

import "errors"

var (
	ErrConfigSourceUnreachable = errors.New("keyword: config source unreachable")
	ErrNoKeywords              = errors.New("keyword: no keyword rules configured")
	ErrPersistFailed           = errors.New("keyword: persist failed")
)
