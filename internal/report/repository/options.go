package repository

import (
	"time"

	"videxcl-srv/internal/model"
)

// ReplacePlacementsOptions keys one batch replace.
type ReplacePlacementsOptions struct {
	AccountID   string
	Date        time.Time
	ContentType string
	Records     []model.PlacementRecord
}
