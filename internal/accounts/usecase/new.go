package usecase

import (
	"videxcl-srv/internal/accounts"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/sheets"
)

// implUseCase implements the accounts.UseCase interface
type implUseCase struct {
	l             log.Logger
	sheets        sheets.ISheets
	producer      accounts.Producer
	accountsRange string
	workerLimit   int
}

// New creates a new accounts usecase
func New(
	l log.Logger,
	sheetsClient sheets.ISheets,
	producer accounts.Producer,
	accountsRange string,
	workerLimit int,
) accounts.UseCase {
	if workerLimit <= 0 {
		workerLimit = 1
	}
	return &implUseCase{
		l:             l,
		sheets:        sheetsClient,
		producer:      producer,
		accountsRange: accountsRange,
		workerLimit:   workerLimit,
	}
}
