package usecase

import (
	"videxcl-srv/internal/exclusion"
	repo "videxcl-srv/internal/exclusion/repository"
	"videxcl-srv/pkg/adsapi"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/minio"
)

// implUseCase implements the exclusion.UseCase interface
type implUseCase struct {
	l          log.Logger
	repo       repo.Repository
	ads        adsapi.IAdsReporting
	store      minio.ObjectStore
	dataBucket string
}

// New creates a new exclusion usecase
func New(
	l log.Logger,
	repository repo.Repository,
	ads adsapi.IAdsReporting,
	store minio.ObjectStore,
	dataBucket string,
) exclusion.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repository,
		ads:        ads,
		store:      store,
		dataBucket: dataBucket,
	}
}
