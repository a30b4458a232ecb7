package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RideHistory=MockRideHistoryService

import (
	"context"
	"cyclebook/config"
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/history/model"
	"cyclebook/internal/domains/history/model/dto"
	"cyclebook/internal/domains/history/repository"
	"cyclebook/shared"
	"cyclebook/shared/cache"
	"cyclebook/shared/constant"
	gDto "cyclebook/shared/dto"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

const cacheRideHistory = "history"

// CacheNamespace scopes an account's cached history pages. Bumping it retires all of them.
func CacheNamespace(accountID string) string {
	return shared.BuildCacheKey(cacheRideHistory, accountID)
}

type RideHistory interface {
	List(ctx context.Context, accountID string, params gDto.QueryParams) ([]dto.RideHistoryResponse, error)
}

type serviceImpl struct {
	repo  repository.RideHistory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RideHistory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RideHistory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns the account's finished rides, newest first.
func (s *serviceImpl) List(ctx context.Context, accountID string, params gDto.QueryParams) (res []dto.RideHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRideHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, keyErr := shared.VersionedKey(ctx, s.cache, CacheNamespace(accountID), strconv.Itoa(params.Page), strconv.Itoa(params.Limit))
	if keyErr != nil {
		log.Warn().Err(keyErr).Msg("ride history cache unavailable")
	} else if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for ride history")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params.OrderBy(model.FieldRecordedAt, gDto.SortDirDesc), repository.ByAccount(accountID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ride history")

		return nil, fmt.Errorf("failed to get ride history: %w", err)
	}

	res = dto.FromModels(models)

	if keyErr != nil {
		return res, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save ride history to cache")
		}
	}()

	return res, nil
}
