package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayedGame(id string) *entity.Game {
	game := entity.NewGame(id)
	position := entity.PositionOf(4)
	game.History = append(game.History, entity.Move{
		Squares:  entity.Board{"", "", "", "", entity.PlayerX, "", "", "", ""},
		LastMove: &position,
	})
	game.StepNumber = 1
	game.Descending = true

	return game
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: a new game
	game := entity.NewGame("123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)

	exists, err := st.Storage.Exists(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game with history
		game := newPlayedGame("123")

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a key that does not hold a game
		require.NoError(t, st.Storage.Set(ctx, "game:bad", "{", 0).Err())

		// When: GetByID is called
		_, err := gameRepo.GetByID(ctx, "bad")

		// Then: a decoding error is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("GetByID_StepOutOfHistory", func(t *testing.T) {
		tests := map[string]string{
			"step past the end": `{"id":"x","history":[{}],"step_number":3}`,
			"negative step":     `{"id":"x","history":[{}],"step_number":-1}`,
			"empty history":     `{"id":"x","history":[],"step_number":0}`,
		}

		for name, stored := range tests {
			t.Run(name, func(t *testing.T) {
				ctx, st := suite.New(t)

				gameRepo := NewGameRepository(st.Storage, 0)

				// Given: a stored game whose cursor points outside its history
				require.NoError(t, st.Storage.Set(ctx, "game:x", stored, 0).Err())

				// When: GetByID is called
				game, err := gameRepo.GetByID(ctx, "x")

				// Then: the game is rejected instead of loaded
				require.ErrorIs(t, err, apperror.ErrGameCorrupt)
				assert.Nil(t, game)
			})
		}
	})
}

func TestGameRepository_TTL(t *testing.T) {
	ctx, st := suite.New(t)
	if st.Redis == nil {
		t.Skip("needs the in-process server to fast forward time")
	}

	gameRepo := NewGameRepository(st.Storage, time.Minute)

	// Given: a game stored with a one minute expiry
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

	// When: more than a minute passes
	st.Redis.FastForward(2 * time.Minute)

	// Then: the game is gone
	_, err := gameRepo.GetByID(ctx, "123")
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := entity.NewGame("123")

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
