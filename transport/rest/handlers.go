package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Game, error)
	ToggleOrder(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, tictactoe.Describe(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, tictactoe.Describe(game))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameUseCase.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell must be a number"})
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), chi.URLParam(r, "id"), cell)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, tictactoe.Describe(game))
}

func (that *handlers) jumpTo(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "step must be a number"})
		return
	}

	game, err := that.gameUseCase.JumpTo(r.Context(), chi.URLParam(r, "id"), step)
	if err != nil {
		that.writeError(w, "jumpTo", err)
		return
	}

	that.writeJSON(w, http.StatusOK, tictactoe.Describe(game))
}

func (that *handlers) toggleOrder(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.ToggleOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "toggleOrder", err)
		return
	}

	that.writeJSON(w, http.StatusOK, tictactoe.Describe(game))
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrInvalidStep):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
