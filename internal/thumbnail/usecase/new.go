package usecase

import (
	"videxcl-srv/internal/thumbnail"
	repo "videxcl-srv/internal/thumbnail/repository"
	pkgHTTP "videxcl-srv/pkg/http"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
	"videxcl-srv/pkg/vision"
)

// Config holds the tunables of the thumbnail pipeline.
type Config struct {
	CropoutsBucket    string
	DispatchLimit     int
	CropMinConfidence float64
	WorkerLimit       int
}

// implUseCase implements the thumbnail.UseCase interface
type implUseCase struct {
	l          log.Logger
	repo       repo.Repository
	vision     vision.IVision
	httpClient pkgHTTP.IClient
	store      minio.ObjectStore
	producer   thumbnail.Producer
	cfg        Config
}

// New creates a new thumbnail usecase
func New(
	l log.Logger,
	repository repo.Repository,
	visionClient vision.IVision,
	httpClient pkgHTTP.IClient,
	store minio.ObjectStore,
	producer thumbnail.Producer,
	cfg Config,
) thumbnail.UseCase {
	if cfg.DispatchLimit <= 0 {
		cfg.DispatchLimit = 500
	}
	if cfg.WorkerLimit <= 0 {
		cfg.WorkerLimit = 1
	}
	if cfg.CropMinConfidence <= 0 {
		cfg.CropMinConfidence = 0.7
	}
	return &implUseCase{
		l:          l,
		repo:       repository,
		vision:     visionClient,
		httpClient: httpClient,
		store:      store,
		producer:   producer,
		cfg:        cfg,
	}
}
