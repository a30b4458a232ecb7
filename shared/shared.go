package shared

import (
	"context"
	"cyclebook/shared/cache"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
	cacheKeyVersion   = "version"
)

// BuildCacheKey joins parts into a namespaced key, e.g. availability:Library.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// VersionedKey builds namespace:v<generation>:parts... from the namespace's current generation.
// Read the key before loading the value it caches, so a load that raced a bump lands on a retired key.
func VersionedKey(ctx context.Context, redisCache cache.RedisCache, namespace string, parts ...string) (string, error) {
	var generation int64

	if err := redisCache.Get(ctx, BuildCacheKey(cacheKeyVersion, namespace), &generation); err != nil && !errors.Is(err, cache.Nil) {
		return "", fmt.Errorf("failed to read cache generation: %w", err)
	}

	return BuildCacheKey(append([]string{namespace, "v" + strconv.FormatInt(generation, 10)}, parts...)...), nil
}

// BumpVersion retires every key built from the current generation of each namespace.
// It runs inline so the caller's next read already misses. Failures are logged only.
func BumpVersion(ctx context.Context, redisCache cache.RedisCache, namespaces ...string) {
	ctx = context.WithoutCancel(ctx)

	for _, namespace := range namespaces {
		if _, err := redisCache.Incr(ctx, BuildCacheKey(cacheKeyVersion, namespace)); err != nil {
			log.Error().Err(err).Str("namespace", namespace).Msg("failed to bump cache generation")
		}
	}
}
