package usecase

import (
	"time"

	"videxcl-srv/internal/enrich"
	repo "videxcl-srv/internal/enrich/repository"
	"videxcl-srv/pkg/log"
	"videxcl-srv/pkg/redis"
	"videxcl-srv/pkg/ytapi"
)

// implUseCase implements the enrich.UseCase interface
type implUseCase struct {
	l        log.Logger
	repo     repo.Repository
	content  ytapi.IContentAPI
	redis    redis.IRedis
	claimTTL time.Duration
}

// New creates a new enrich usecase
func New(
	l log.Logger,
	repository repo.Repository,
	content ytapi.IContentAPI,
	redisClient redis.IRedis,
	claimTTL time.Duration,
) enrich.UseCase {
	if claimTTL <= 0 {
		claimTTL = time.Hour
	}
	return &implUseCase{
		l:        l,
		repo:     repository,
		content:  content,
		redis:    redisClient,
		claimTTL: claimTTL,
	}
}
