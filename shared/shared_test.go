package shared_test

import (
	"context"
	"cyclebook/shared"
	"cyclebook/shared/cache/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"bookings"},
			expected: "bookings",
		},
		{
			name:     "namespaced",
			parts:    []string{"availability", "Library"},
			expected: "availability:Library",
		},
		{
			name:     "history page key",
			parts:    []string{"history", "rider-1", "1", "10"},
			expected: "history:rider-1:1:10",
		},
		{
			name:     "empty",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestVersionedKey(t *testing.T) {
	ctx := context.Background()
	memory := mocks.NewMemoryCache()

	key, err := shared.VersionedKey(ctx, memory, "history:rider-1", "1", "10")
	require.NoError(t, err)
	assert.Equal(t, "history:rider-1:v0:1:10", key)

	shared.BumpVersion(ctx, memory, "history:rider-1", "availability:Library")
	shared.BumpVersion(ctx, memory, "history:rider-1")

	key, err = shared.VersionedKey(ctx, memory, "history:rider-1", "1", "10")
	require.NoError(t, err)
	assert.Equal(t, "history:rider-1:v2:1:10", key)

	key, err = shared.VersionedKey(ctx, memory, "availability:Library")
	require.NoError(t, err)
	assert.Equal(t, "availability:Library:v1", key)
}

func TestVersionedKey_CacheDown(t *testing.T) {
	redisCache := mocks.NewMockRedisCache(gomock.NewController(t))
	redisCache.EXPECT().Get(gomock.Any(), "version:availability:Library", gomock.Any()).Return(errors.New("redis down"))

	_, err := shared.VersionedKey(context.Background(), redisCache, "availability:Library")

	assert.Error(t, err)
}

func TestBumpVersion_IgnoresCancellation(t *testing.T) {
	redisCache := mocks.NewMockRedisCache(gomock.NewController(t))
	redisCache.EXPECT().Incr(gomock.Any(), "version:availability:Library").
		DoAndReturn(func(ctx context.Context, _ string) (int64, error) {
			assert.NoError(t, ctx.Err())

			return 1, nil
		})
	redisCache.EXPECT().Incr(gomock.Any(), "version:history:rider-1").Return(int64(0), errors.New("redis down"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shared.BumpVersion(ctx, redisCache, "availability:Library", "history:rider-1")
}
