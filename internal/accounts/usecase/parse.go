package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"videxcl-srv/internal/accounts"
	"videxcl-srv/internal/model"
)

// Config sheet columns: account id, enabled, lookback days, metric filters,
// detect objects, crop objects. Trailing cells may be absent because the
// sheet API drops empty trailing values.
const (
	colAccountID = iota
	colEnabled
	colLookbackDays
	colFilters
	colDetectObjects
	colCropObjects
)

func parseAccountRow(row []string) (model.AccountConfig, error) {
	if len(row) <= colAccountID || strings.TrimSpace(row[colAccountID]) == "" {
		return model.AccountConfig{}, fmt.Errorf("%w: missing account id", accounts.ErrInvalidAccountRow)
	}

	cfg := model.AccountConfig{
		AccountID: normalizeAccountID(row[colAccountID]),
	}
	cfg.Enabled = parseBoolCell(cell(row, colEnabled))
	if days := cell(row, colLookbackDays); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return model.AccountConfig{}, fmt.Errorf("%w: bad lookback days %q", accounts.ErrInvalidAccountRow, days)
		}
		cfg.LookbackDays = n
	}
	cfg.Filters = parseFilters(cell(row, colFilters))
	cfg.DetectObjects = parseBoolCell(cell(row, colDetectObjects))
	cfg.CropObjects = parseBoolCell(cell(row, colCropObjects))

	return cfg, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// normalizeAccountID strips the dashes customer ids are often written with.
func normalizeAccountID(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}

func parseBoolCell(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "enabled":
		return true
	}
	return false
}

// parseFilters splits a metric-filter cell into individual conditions.
// Conditions are separated by ";", e.g.
// "metrics.impressions > 100; metrics.clicks > 10".
func parseFilters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
