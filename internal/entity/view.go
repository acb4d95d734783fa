package entity

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

type Square struct {
	Value   string `json:"value"`
	Winning bool   `json:"winning,omitempty"`
}

type MoveEntry struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Current     bool   `json:"current,omitempty"`
}

// GameView is what clients render: the board at the cursor, the status line and the move list.
type GameView struct {
	ID         string            `json:"id"`
	Squares    [BoardSize]Square `json:"squares"`
	Status     string            `json:"status"`
	StatusLine string            `json:"status_line"`
	Winner     string            `json:"winner,omitempty"`
	NextPlayer string            `json:"next_player,omitempty"`
	StepNumber int               `json:"step_number"`
	Descending bool              `json:"descending"`
	Moves      []MoveEntry       `json:"moves"`
}
