package agecheck

import "errors"

var (
	ErrConfigSourceUnreachable = errors.New("agecheck: config source unreachable")
	ErrIncompleteConfig        = errors.New("agecheck: evaluation prompt or system instruction missing")
	ErrPersistFailed           = errors.New("agecheck: persist failed")
	ErrPublishFailed           = errors.New("agecheck: publish failed")
)
