package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/transport/view"
)

// Message represents a websocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game   *view.Game `json:"game,omitempty"`
	Action string     `json:"action,omitempty"`
	Error  string     `json:"error,omitempty"`
}

func gameMessage(action string, game *view.Game) *Message {
	return &Message{
		Action:  action,
		Payload: mustMarshal(ResponsePayload{Game: game}),
	}
}

// errorMessage answers with the "error" action; the payload names the action that failed.
func errorMessage(action, text string) *Message {
	return &Message{
		Action:  actionError,
		Payload: mustMarshal(ResponsePayload{Action: action, Error: text}),
	}
}
