package usecase

import (
	"videxcl-srv/internal/report"
	repo "videxcl-srv/internal/report/repository"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
)

// implUseCase implements the report.UseCase interface
type implUseCase struct {
	l               log.Logger
	repo            repo.Repository
	ads             adsapi.IAdsReporting
	store           minio.ObjectStore
	producer        report.Producer
	dataBucket      string
	defaultLookback int
	workerLimit     int
}

// New creates a new report usecase
func New(
	l log.Logger,
	repository repo.Repository,
	ads adsapi.IAdsReporting,
	store minio.ObjectStore,
	producer report.Producer,
	dataBucket string,
	defaultLookback int,
	workerLimit int,
) report.UseCase {
	if defaultLookback <= 0 {
		defaultLookback = 7
	}
	if workerLimit <= 0 {
		workerLimit = 1
	}
	return &implUseCase{
		l:               l,
		repo:            repository,
		ads:             ads,
		store:           store,
		producer:        producer,
		dataBucket:      dataBucket,
		defaultLookback: defaultLookback,
		workerLimit:     workerLimit,
	}
}
