package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	pkghttp "videxcl-srv/pkg/http"
)

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		config:     cfg,
		httpClient: pkghttp.NewClient(pkghttp.DefaultConfig()),
	}
}

// ReadRange fetches the values of a named range from the spreadsheet service.
func (c *clientImpl) ReadRange(ctx context.Context, sheetID, rangeName string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.config.BaseURL, url.PathEscape(sheetID), url.PathEscape(rangeName))
	if c.config.APIKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.config.APIKey)
	}

	body, status, err := c.httpClient.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to read range %s: %w", rangeName, err)
	}
	if status == http.StatusNotFound {
		return nil, ErrRangeNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("sheets: unexpected status %d reading range %s", status, rangeName)
	}

	var resp valuesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("sheets: failed to unmarshal range %s: %w", rangeName, err)
	}
	return resp.Values, nil
}
