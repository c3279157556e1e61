package usecase

import (
	"videxcl-srv/internal/agecheck"
	repo "videxcl-srv/internal/agecheck/repository"
	"videxcl-srv/pkg/gemini"
	pkgHTTP "videxcl-srv/pkg/http"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/sheets"
)

// Config holds the tunables of the age evaluation pipeline.
type Config struct {
	DispatchLimit int
	// BatchSize is how many videos one evaluation unit carries.
	BatchSize   int
	WorkerLimit int
}

// implUseCase implements the agecheck.UseCase interface
type implUseCase struct {
	l          log.Logger
	repo       repo.Repository
	evaluator  gemini.IGemini
	httpClient pkgHTTP.IClient
	sheets     sheets.ISheets
	producer   agecheck.Producer
	cfg        Config
}

// New creates a new agecheck usecase
func New(
	l log.Logger,
	repository repo.Repository,
	evaluator gemini.IGemini,
	httpClient pkgHTTP.IClient,
	sheetsClient sheets.ISheets,
	producer agecheck.Producer,
	cfg Config,
) agecheck.UseCase {
	if cfg.DispatchLimit <= 0 {
		cfg.DispatchLimit = 500
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.WorkerLimit <= 0 {
		cfg.WorkerLimit = 1
	}
	return &implUseCase{
		l:          l,
		repo:       repository,
		evaluator:  evaluator,
		httpClient: httpClient,
		sheets:     sheetsClient,
		producer:   producer,
		cfg:        cfg,
	}
}
