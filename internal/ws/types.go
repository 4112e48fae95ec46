package ws

import (
	"encoding/json"
)

// MessageType names the kind of frame sent over a game socket
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope every frame travels in
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewError builds an error frame carrying text.
func NewError(text string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: text})
	return Message{Type: MessageTypeError, Payload: payload}
}
