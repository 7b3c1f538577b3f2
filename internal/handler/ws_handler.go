package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/boshify/content-brief-generator/internal/service"
	"github.com/boshify/content-brief-generator/internal/websocket"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	manager  *websocket.Manager
	sessions *service.SessionService
	upgrader ws.Upgrader
}

func NewWebSocketHandler(manager *websocket.Manager, sessions *service.SessionService, readBufferSize, writeBufferSize int) *WebSocketHandler {
	return &WebSocketHandler{
		manager:  manager,
		sessions: sessions,
		upgrader: ws.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection subscribes a connection to a session's snapshot stream.
// The session must already exist.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "missing session_id", http.StatusBadRequest)
		return
	}

	if _, err := h.sessions.Get(sessionID); err != nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WebSocket] Failed to upgrade connection: %v", err)
		return
	}

	client := websocket.NewClient(uuid.New().String(), sessionID, conn, h.manager)
	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// WebSocketMessageHandler answers the small set of client-initiated
// messages: keepalive pings and on-demand snapshot requests.
type WebSocketMessageHandler struct {
	sessions *service.SessionService
}

func NewWebSocketMessageHandler(sessions *service.SessionService) *WebSocketMessageHandler {
	return &WebSocketMessageHandler{sessions: sessions}
}

func (h *WebSocketMessageHandler) HandleWebSocketMessage(client *websocket.Client, msg *websocket.Message) error {
	switch msg.Type {
	case websocket.TypeSnapshotRequest:
		return h.handleSnapshotRequest(client)

	case websocket.TypePing:
		return h.reply(client, websocket.TypePong, nil)

	default:
		log.Printf("unknown message type: %s", msg.Type)
	}

	return nil
}

func (h *WebSocketMessageHandler) handleSnapshotRequest(client *websocket.Client) error {
	session, err := h.sessions.Get(client.SessionID)
	if err != nil {
		return err
	}
	return h.reply(client, websocket.TypeSnapshot, session)
}

func (h *WebSocketMessageHandler) reply(client *websocket.Client, msgType websocket.MessageType, payload interface{}) error {
	msg, err := websocket.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	msgBytes, _ := json.Marshal(msg)
	client.Send <- msgBytes
	return nil
}
