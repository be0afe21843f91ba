package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/adapters/cache"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client, *mocks.MockAuthorDirectory) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb, mocks.NewMockAuthorDirectory(gomock.NewController(t))
}

func TestAuthorCacheReadsThrough(t *testing.T) {
	mr, rdb, source := setup(t)
	ctx := context.Background()
	ana := domain.AuthorSummary{ID: uuid.New(), Name: "Ana", AvatarURL: "https://example.org/ana.png"}
	ghost := uuid.New()

	source.EXPECT().
		Summaries(gomock.Any(), gomock.InAnyOrder([]uuid.UUID{ana.ID, ghost})).
		Return(map[uuid.UUID]domain.AuthorSummary{ana.ID: ana}, nil).
		Times(1)

	c := cache.NewAuthorCache(rdb, source, 10*time.Minute, zaptest.NewLogger(t))

	got, err := c.Summaries(ctx, []uuid.UUID{ana.ID, ghost})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]domain.AuthorSummary{ana.ID: ana}, got)

	assert.True(t, mr.Exists("author:"+ana.ID.String()))
	assert.False(t, mr.Exists("author:"+ghost.String()), "unknown authors are not cached")
	assert.Equal(t, 10*time.Minute, mr.TTL("author:"+ana.ID.String()))

	source.EXPECT().Summaries(gomock.Any(), []uuid.UUID{ghost}).Return(map[uuid.UUID]domain.AuthorSummary{}, nil)

	got, err = c.Summaries(ctx, []uuid.UUID{ana.ID, ghost})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]domain.AuthorSummary{ana.ID: ana}, got)
}

func TestAuthorCacheExpires(t *testing.T) {
	mr, rdb, source := setup(t)
	ctx := context.Background()
	ana := domain.AuthorSummary{ID: uuid.New(), Name: "Ana"}
	renamed := domain.AuthorSummary{ID: ana.ID, Name: "Ana B."}

	gomock.InOrder(
		source.EXPECT().Summaries(gomock.Any(), []uuid.UUID{ana.ID}).Return(map[uuid.UUID]domain.AuthorSummary{ana.ID: ana}, nil),
		source.EXPECT().Summaries(gomock.Any(), []uuid.UUID{ana.ID}).Return(map[uuid.UUID]domain.AuthorSummary{ana.ID: renamed}, nil),
	)

	c := cache.NewAuthorCache(rdb, source, time.Minute, nil)

	got, err := c.Summaries(ctx, []uuid.UUID{ana.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got[ana.ID].Name)

	got, err = c.Summaries(ctx, []uuid.UUID{ana.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got[ana.ID].Name, "stale within the ttl")

	mr.FastForward(2 * time.Minute)

	got, err = c.Summaries(ctx, []uuid.UUID{ana.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ana B.", got[ana.ID].Name)
}

func TestAuthorCacheFallsBackWhenRedisIsDown(t *testing.T) {
	mr, rdb, source := setup(t)
	ana := domain.AuthorSummary{ID: uuid.New(), Name: "Ana"}
	mr.Close()

	source.EXPECT().Summaries(gomock.Any(), []uuid.UUID{ana.ID}).Return(map[uuid.UUID]domain.AuthorSummary{ana.ID: ana}, nil)

	c := cache.NewAuthorCache(rdb, source, time.Minute, zaptest.NewLogger(t))
	got, err := c.Summaries(context.Background(), []uuid.UUID{ana.ID})
	require.NoError(t, err)
	assert.Equal(t, ana, got[ana.ID])
}

func TestAuthorCacheSourceError(t *testing.T) {
	_, rdb, source := setup(t)
	boom := errors.New("database is gone")
	source.EXPECT().Summaries(gomock.Any(), gomock.Any()).Return(nil, boom)

	c := cache.NewAuthorCache(rdb, source, time.Minute, nil)
	_, err := c.Summaries(context.Background(), []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, boom)
}

func TestAuthorCacheEmpty(t *testing.T) {
	_, rdb, source := setup(t)
	c := cache.NewAuthorCache(rdb, source, time.Minute, nil)

	got, err := c.Summaries(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
