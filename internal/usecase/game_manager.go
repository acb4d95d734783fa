package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type recorder interface {
	GameCreated()
	MoveApplied()
	MoveIgnored()
	Jumped()
	GameDecided(outcome string)
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	metrics  recorder
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, metrics recorder) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		metrics:  metrics,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.metrics.GameCreated()
	that.logger.Debug("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn clicks a cell of the board under the cursor. Clicks on an occupied cell or on a decided
// board are ignored: the game is returned unchanged and no error is reported.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	err = tictactoe.MakeTurn(game, cell)
	if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrGameFinished) {
		log.Debug("turn ignored", "reason", err)
		that.metrics.MoveIgnored()

		return game, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.metrics.MoveApplied()

	if outcome := tictactoe.Outcome(game.Current().Squares); outcome != "" {
		that.metrics.GameDecided(outcome)
		log.Info("game decided", "outcome", outcome, "step", game.StepNumber)
	}

	return game, nil
}

func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.JumpTo(game, step); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.metrics.Jumped()

	return game, nil
}

func (that *GameManager) ToggleOrder(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	tictactoe.ToggleOrder(game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
