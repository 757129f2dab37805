package client

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

// Hub fans client events out to every connected browser UI. It
// implements Publisher for the controllers.
type Hub struct {
	clients   map[*websocket.Conn]bool
	clientsMu sync.RWMutex
	broadcast chan []byte
}

// NewHub creates a hub. Run must be started before publishing.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 256),
	}
}

// Run drains the broadcast channel, writing each event to every UI
// connection. Dead connections are dropped in place.
func (h *Hub) Run() {
	for data := range h.broadcast {
		h.clientsMu.Lock()
		for conn := range h.clients {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.clientsMu.Unlock()
	}
}

// Publish wraps a payload in an envelope and broadcasts it to the UI.
// The event is dropped if the broadcast buffer is full.
func (h *Hub) Publish(t protocol.MessageType, payload interface{}) {
	env, err := protocol.NewEnvelope(t, payload)
	if err != nil {
		log.Printf("Failed to create %s envelope: %v", t, err)
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", t, err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		// Drop if buffer full
	}
}

// Register adds a UI connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.clientsMu.Lock()
	h.clients[conn] = true
	h.clientsMu.Unlock()
}

// Unregister removes a UI connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.clientsMu.Lock()
	delete(h.clients, conn)
	h.clientsMu.Unlock()
}

// SendTo writes an envelope to a single connection, bypassing the
// broadcast. Used for initial state on connect.
func (h *Hub) SendTo(conn *websocket.Conn, t protocol.MessageType, payload interface{}) error {
	env, err := protocol.NewEnvelope(t, payload)
	if err != nil {
		return err
	}
	return conn.WriteJSON(env)
}
