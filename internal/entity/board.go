package entity

import "fmt"

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
	boardSide = 3
)

// WinCombos lists the rows, then the columns, then the diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]string

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Position is the 1-based column and row of a cell.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func PositionOf(cell int) Position {
	return Position{
		Col: cell%boardSide + 1,
		Row: cell/boardSide + 1,
	}
}

func (that Position) String() string {
	return fmt.Sprintf("(col: %d, row: %d)", that.Col, that.Row)
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
