package model

import "time"

// AccountConfig is one account row from the spreadsheet-backed config source.
type AccountConfig struct {
	AccountID     string
	Enabled       bool
	Filters       []string
	LookbackDays  int
	DetectObjects bool
	CropObjects   bool
}

// AccountWorkUnit is one fan-out unit on the accounts topic. Each unit
// carries its own copy of the filters so downstream stages never read the
// config source again.
type AccountWorkUnit struct {
	RunID         string    `json:"run_id"`
	AccountID     string    `json:"account_id"`
	Filters       []string  `json:"filters"`
	LookbackDays  int       `json:"lookback_days"`
	DetectObjects bool      `json:"detect_objects"`
	CropObjects   bool      `json:"crop_objects"`
	DispatchedAt  time.Time `json:"dispatched_at"`
}
