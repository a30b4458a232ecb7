package di

import (
	"cyclebook/config"
	"cyclebook/infras/postgres"
	"cyclebook/infras/redis"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ProvidePostgres opens the pool and hands wire a cleanup that closes it.
func ProvidePostgres(cfg *config.Config) (*postgres.Connection, func(), error) {
	conn, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close postgres")
		}
	}, nil
}

func ProvideRedis(cfg *config.Config) (*goRedis.Client, func(), error) {
	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}, nil
}
