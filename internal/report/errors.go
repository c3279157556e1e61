package report

import "errors"

var (
	ErrUnknownContentType = errors.New("report: unknown content type")
	ErrReportQueryFailed  = errors.New("report: report query failed")
	ErrPersistFailed      = errors.New("report: persist failed")
)
