package entity

// Move is one history entry: the board after a move and where that move was made.
// The entry for the game start has no LastMove.
type Move struct {
	Squares  Board     `json:"squares"`
	LastMove *Position `json:"last_move,omitempty"`
}

type Game struct {
	ID         string `json:"id"`
	History    []Move `json:"history"`
	StepNumber int    `json:"step_number"`
	Descending bool   `json:"descending,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		History: []Move{{}},
	}
}

// Current returns the history entry under the cursor.
func (that *Game) Current() Move {
	return that.History[that.StepNumber]
}

// NextPlayer is derived from the cursor parity, X moves on even steps.
func (that *Game) NextPlayer() string {
	if that.StepNumber%2 == 0 {
		return PlayerX
	}

	return PlayerO
}

func (that *Game) LastStep() int {
	return len(that.History) - 1
}

// Clone returns a deep copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	clone.History = make([]Move, len(that.History))

	for i, move := range that.History {
		clone.History[i] = Move{Squares: move.Squares}
		if move.LastMove != nil {
			pos := *move.LastMove
			clone.History[i].LastMove = &pos
		}
	}

	return &clone
}
