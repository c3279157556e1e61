package accounts

import "errors"

var (
	ErrConfigSourceUnreachable = errors.New("accounts: config source unreachable")
	ErrInvalidAccountRow       = errors.New("accounts: invalid account row")
	ErrPublishFailed           = errors.New("accounts: publish failed")
)
