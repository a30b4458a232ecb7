package redis

import (
	"context"
	"cyclebook/config"
	"fmt"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(cfg *config.Config) (*goRedis.Client, error) {
	primary := cfg.Cache.Redis.Primary

	port := primary.Port
	if port == "" {
		port = "6379"
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", port).
		Msg("Connected to Redis")

	return client, nil
}
