package repository

import "errors"

var (
	ErrFailedToReplace = errors.New("failed to replace placements")
	ErrFailedToQuery   = errors.New("failed to query content ids")
)
