package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionGetGame  = "game:get"
	actionTurn     = "game:turn"
	actionReset    = "game:reset"
	actionLeave    = "game:leave"
	actionEvaluate = "game:evaluate"
	actionMove     = "game:move"
	actionError    = "error"
)

// Message - envelope for both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID     string        `json:"game_id,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	Mark       string        `json:"mark,omitempty"`
	Computer   string        `json:"computer,omitempty"`
	Cell       *int          `json:"cell,omitempty"`
	Board      []entity.Mark `json:"board,omitempty"`
}

type Move struct {
	Cell  int  `json:"cell"`
	Found bool `json:"found"`
}

type ResponsePayload struct {
	Game    *entity.Game    `json:"game,omitempty"`
	Outcome *entity.Outcome `json:"outcome,omitempty"`
	Move    *Move           `json:"move,omitempty"`
	Error   string          `json:"error,omitempty"`
}
