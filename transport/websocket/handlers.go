package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
	errStepRequired   = errors.New("step is required")
)

func (that *Server) handleNewGame(ctx context.Context, _ *Request) (*entity.Game, error) {
	return that.gameUseCase.NewGame(ctx)
}

func (that *Server) handleGetGame(ctx context.Context, req *Request) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.gameUseCase.GetGame(ctx, req.GameID)
}

func (that *Server) handlePlay(ctx context.Context, req *Request) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	if req.Cell == nil {
		return nil, errCellRequired
	}

	return that.gameUseCase.MakeTurn(ctx, req.GameID, *req.Cell)
}

func (that *Server) handleJump(ctx context.Context, req *Request) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	if req.Step == nil {
		return nil, errStepRequired
	}

	return that.gameUseCase.JumpTo(ctx, req.GameID, *req.Step)
}

func (that *Server) handleOrder(ctx context.Context, req *Request) (*entity.Game, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.gameUseCase.ToggleOrder(ctx, req.GameID)
}
