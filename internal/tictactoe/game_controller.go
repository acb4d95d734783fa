package tictactoe

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// CalculateWinner returns the mark and cells of the first completed line, or an empty mark and nil.
func CalculateWinner(board entity.Board) (string, []int) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, combo[:]
		}
	}

	return "", nil
}

// Outcome reports the winner, entity.PlayerTie for a full board without one, or "" while the game goes on.
func Outcome(board entity.Board) string {
	if winner, _ := CalculateWinner(board); winner != "" {
		return winner
	}

	if board.IsFull() {
		return entity.PlayerTie
	}

	return ""
}

// MakeTurn places the next player's mark on the board under the cursor.
// Any history after the cursor is dropped before the new entry is appended.
func MakeTurn(game *entity.Game, cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if err := validateMove(game.Current().Squares, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	history := game.History[:game.StepNumber+1]
	squares := history[len(history)-1].Squares
	squares[cell] = game.NextPlayer()

	position := entity.PositionOf(cell)

	// clip capacity so the truncated tail is never shared with older snapshots
	game.History = append(slices.Clip(history), entity.Move{
		Squares:  squares,
		LastMove: &position,
	})
	game.StepNumber = game.LastStep()

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int) error {
	if winner, _ := CalculateWinner(board); winner != "" {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// JumpTo moves the cursor to a recorded step without touching the history.
func JumpTo(game *entity.Game, step int) error {
	if step < 0 || step > game.LastStep() {
		return fmt.Errorf("%w: step %d of %d", apperror.ErrInvalidStep, step, game.LastStep())
	}

	game.StepNumber = step

	return nil
}

func ToggleOrder(game *entity.Game) {
	game.Descending = !game.Descending
}
