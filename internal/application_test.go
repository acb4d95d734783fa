package application

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func TestNewGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		repo, closeRepo, err := newGameRepository(ctx, &config.Config{Storage: config.StorageMemory})

		require.NoError(t, err)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("123")))
		assert.NoError(t, closeRepo())
	})

	t.Run("Redis", func(t *testing.T) {
		// Given: a running Redis server
		server := miniredis.RunT(t)
		conf := &config.Config{
			Storage: config.StorageRedis,
			Redis:   config.Redis{Host: server.Host(), Port: server.Port()},
		}

		// When: building the repository
		repo, closeRepo, err := newGameRepository(ctx, conf)

		// Then: games land in Redis
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewGame("123")))
		assert.True(t, server.Exists("game:123"))
		assert.NoError(t, closeRepo())
	})

	t.Run("Unknown storage", func(t *testing.T) {
		_, _, err := newGameRepository(ctx, &config.Config{Storage: "floppy"})

		require.ErrorIs(t, err, ErrUnknownStorage)
	})
}
