package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	// Server -> client.
	TypeSnapshot         MessageType = "snapshot"
	TypeGenerateStarted  MessageType = "generate_started"
	TypeGenerateFinished MessageType = "generate_finished"
	TypeGenerateError    MessageType = "generate_error"
	TypePong             MessageType = "pong"

	// Client -> server.
	TypeSnapshotRequest MessageType = "snapshot_request"
	TypePing            MessageType = "ping"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type GenerateErrorPayload struct {
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Payload:   payloadBytes,
	}, nil
}

func (m *Message) UnmarshalPayload(v interface{}) error {
	if m.Payload == nil {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
