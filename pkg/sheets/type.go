package sheets

import (
	"errors"

	pkghttp "videxcl-srv/pkg/http"
)

var (
	ErrBaseURLRequired = errors.New("sheets: base URL is required")
	ErrRangeNotFound   = errors.New("sheets: range not found")
)

// Config holds configuration for the sheets client.
type Config struct {
	BaseURL string
	APIKey  string
}

// clientImpl implements ISheets.
type clientImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

// valuesResponse is the wire shape of a range read.
type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}
