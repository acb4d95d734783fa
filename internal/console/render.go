package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	emptySquare  = "."
	rowSeparator = "---+---+---"
)

// Render prints the board, the status line and the move list.
// Winning squares are shown in reverse video and the current step in bold.
func Render(out *termenv.Output, view *entity.GameView) {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, renderSquare(out, view.Squares[row*3+col]))
		}

		b.WriteString(" " + strings.Join(cells, " | ") + "\n")
	}

	b.WriteString("\n" + view.StatusLine + "\n\n")

	for _, move := range view.Moves {
		line := fmt.Sprintf("%2d. %s", move.Step, move.Description)
		if move.Current {
			line = out.String(line).Bold().String()
		}

		b.WriteString(line + "\n")
	}

	_, _ = io.WriteString(out, b.String())
}

func renderSquare(out *termenv.Output, square entity.Square) string {
	value := square.Value
	if value == entity.EmptyCell {
		value = emptySquare
	}

	if square.Winning {
		return out.String(value).Reverse().Bold().String()
	}

	return value
}
