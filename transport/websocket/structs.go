package websocket

import (
	"encoding/json"

	"github.com/hotseatlabs/stockticker-backend/internal/entity"
	"github.com/hotseatlabs/stockticker-backend/internal/stockticker"
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	length  uint64
	payload []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries command arguments from the table UI and game state back
// to it.
type Payload struct {
	GameID    string                 `json:"game_id,omitempty"`
	Players   []string               `json:"players,omitempty"`
	Player    string                 `json:"player,omitempty"`
	Stock     entity.Symbol          `json:"stock,omitempty"`
	Direction string                 `json:"direction,omitempty"`
	Shares    int                    `json:"shares,omitempty"`
	Slot      string                 `json:"slot,omitempty"`
	Slots     []string               `json:"slots,omitempty"`
	Game      *entity.Game           `json:"game,omitempty"`
	Standings []stockticker.Standing `json:"standings,omitempty"`
	Error     string                 `json:"error,omitempty"`
}
