package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const gameStartDescription = "Go to game start"

// Describe builds the view of the game at its current step.
func Describe(game *entity.Game) *entity.GameView {
	current := game.Current()

	view := &entity.GameView{
		ID:         game.ID,
		StepNumber: game.StepNumber,
		Descending: game.Descending,
		Moves:      describeMoves(game),
	}

	winner, line := CalculateWinner(current.Squares)

	for i, value := range current.Squares {
		view.Squares[i].Value = value
	}

	for _, cell := range line {
		view.Squares[cell].Winning = true
	}

	switch {
	case winner != "":
		view.Status = entity.StatusWon
		view.Winner = winner
		view.StatusLine = "Winner: " + winner
	case current.Squares.IsFull():
		view.Status = entity.StatusDraw
		view.Winner = entity.PlayerTie
		view.StatusLine = "Draw"
	default:
		view.Status = entity.StatusPlaying
		view.NextPlayer = game.NextPlayer()
		view.StatusLine = "Next player: " + view.NextPlayer
	}

	return view
}

func describeMoves(game *entity.Game) []entity.MoveEntry {
	moves := make([]entity.MoveEntry, 0, len(game.History))

	for step, move := range game.History {
		entry := entity.MoveEntry{
			Step:        step,
			Description: gameStartDescription,
			Current:     step == game.StepNumber,
		}

		if step > 0 && move.LastMove != nil {
			entry.Description = fmt.Sprintf("Go to move #%d %s", step, move.LastMove)
		}

		moves = append(moves, entry)
	}

	if game.Descending {
		slices.Reverse(moves)
	}

	return moves
}
