package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	actionNewGame   = "game:new"
	actionTurn      = "game:turn"
	actionGameState = "game:state"
	actionSuggest   = "board:suggest"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload - the union of every field a client may send.
type RequestPayload struct {
	GameID string           `json:"game_id,omitempty"`
	Mark   tictactoe.Player `json:"mark,omitempty"`
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	Board  *tictactoe.Board `json:"board,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Game      `json:"game,omitempty"`
	Action *tictactoe.Action `json:"action,omitempty"`
	Error  string            `json:"error,omitempty"`
}
