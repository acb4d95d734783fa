package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionPlay    = "game:play"
	actionJump    = "game:jump"
	actionOrder   = "game:order"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Request is the payload sent by clients. Cell and Step are set only for the actions that use them.
type Request struct {
	GameID string `json:"game_id,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
	Step   *int   `json:"step,omitempty"`
}

type Response struct {
	Game  *entity.GameView `json:"game,omitempty"`
	Error string           `json:"error,omitempty"`
}
