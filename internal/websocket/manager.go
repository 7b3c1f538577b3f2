package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

type ClientMessage struct {
	Client  *Client
	Message []byte
}

// Manager tracks the open connections per session and fans fresh outline
// snapshots out to them.
type Manager struct {
	clients           map[string]*Client
	sessionIndex      map[string]map[string]bool
	clientsMutex      sync.RWMutex
	Register          chan *Client
	Unregister        chan *Client
	HandleMessage     chan *ClientMessage
	maxConnPerSession int
	writeWait         time.Duration
	pongWait          time.Duration
	pingPeriod        time.Duration
	messageHandler    MessageHandler
}

type MessageHandler interface {
	HandleWebSocketMessage(client *Client, msg *Message) error
}

func NewManager(maxConnPerSession int, writeWait, pongWait, pingPeriod time.Duration) *Manager {
	return &Manager{
		clients:           make(map[string]*Client),
		sessionIndex:      make(map[string]map[string]bool),
		Register:          make(chan *Client),
		Unregister:        make(chan *Client),
		HandleMessage:     make(chan *ClientMessage),
		maxConnPerSession: maxConnPerSession,
		writeWait:         writeWait,
		pongWait:          pongWait,
		pingPeriod:        pingPeriod,
	}
}

func (m *Manager) SetMessageHandler(handler MessageHandler) {
	m.messageHandler = handler
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)

		case clientMsg := <-m.HandleMessage:
			m.processMessage(clientMsg)
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if m.sessionIndex[client.SessionID] == nil {
		m.sessionIndex[client.SessionID] = make(map[string]bool)
	}

	if len(m.sessionIndex[client.SessionID]) >= m.maxConnPerSession {
		log.Printf("max connections reached for session %s", client.SessionID)
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.sessionIndex[client.SessionID][client.ID] = true

	log.Printf("client registered: %s (session: %s)", client.ID, client.SessionID)
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		delete(m.sessionIndex[client.SessionID], client.ID)

		if len(m.sessionIndex[client.SessionID]) == 0 {
			delete(m.sessionIndex, client.SessionID)
		}

		close(client.Send)
		log.Printf("client unregistered: %s", client.ID)
	}
}

func (m *Manager) processMessage(clientMsg *ClientMessage) {
	var msg Message
	if err := json.Unmarshal(clientMsg.Message, &msg); err != nil {
		log.Printf("error unmarshaling message: %v", err)
		return
	}

	if m.messageHandler != nil {
		if err := m.messageHandler.HandleWebSocketMessage(clientMsg.Client, &msg); err != nil {
			log.Printf("error handling message: %v", err)
		}
	}
}

// BroadcastToSession sends a message to every connection subscribed to the
// session.
func (m *Manager) BroadcastToSession(sessionID string, message *Message) error {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	clientIDs, exists := m.sessionIndex[sessionID]
	if !exists {
		return nil
	}

	for clientID := range clientIDs {
		client := m.clients[clientID]
		select {
		case client.Send <- messageBytes:
		default:
			log.Printf("client %s send buffer full, closing connection", clientID)
			m.Unregister <- client
		}
	}

	return nil
}

func (m *Manager) SessionConnections(sessionID string) int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	if clients, exists := m.sessionIndex[sessionID]; exists {
		return len(clients)
	}
	return 0
}
