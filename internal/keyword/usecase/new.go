package usecase

import (
	"videxcl-srv/internal/keyword"
	repo "videxcl-srv/internal/keyword/repository"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/sheets"
)

// implUseCase implements the keyword.UseCase interface
type implUseCase struct {
	l             log.Logger
	repo          repo.Repository
	sheets        sheets.ISheets
	keywordsRange string
}

// New creates a new keyword usecase
func New(
	l log.Logger,
	repository repo.Repository,
	sheetsClient sheets.ISheets,
	keywordsRange string,
) keyword.UseCase {
	return &implUseCase{
		l:             l,
		repo:          repository,
		sheets:        sheetsClient,
		keywordsRange: keywordsRange,
	}
}
