// Package websocket implements the admin dashboard's read-only event-stream
// feed: every connected dashboard client receives JSON-encoded entity state
// changes and device-API connection lifecycle events, grouped by room so a
// dashboard can subscribe to just the rooms it cares about.
package websocket

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one notification pushed to subscribed dashboard clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client represents a single WebSocket connection.
type Client struct {
	ID         string
	Conn       *websocket.Conn
	RemoteAddr string
	Rooms      map[string]bool
	mu         sync.Mutex
}

// Send sends a message to this WebSocket client.
func (c *Client) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

// Manager manages all WebSocket connections, rooms, and message routing.
type Manager struct {
	clients map[string]*Client
	rooms   map[string]map[string]*Client
	mu      sync.RWMutex
	logger  *slog.Logger
}

// NewManager creates a new WebSocket connection manager.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
		logger:  logger,
	}
}

// AddConnection registers a new WebSocket connection and joins it to the
// "events" room, which carries every event this process emits.
func (m *Manager) AddConnection(conn *websocket.Conn, r *http.Request) *Client {
	id := generateConnID()
	client := &Client{
		ID:         id,
		Conn:       conn,
		RemoteAddr: r.RemoteAddr,
		Rooms:      make(map[string]bool),
	}

	m.mu.Lock()
	m.clients[id] = client
	m.mu.Unlock()

	m.JoinRoom(id, "events")
	return client
}

// RemoveConnection unregisters a WebSocket connection and removes it from
// every room it had joined.
func (m *Manager) RemoveConnection(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, exists := m.clients[id]
	if !exists {
		return
	}

	for room := range client.Rooms {
		if members, ok := m.rooms[room]; ok {
			delete(members, id)
			if len(members) == 0 {
				delete(m.rooms, room)
			}
		}
	}
	delete(m.clients, id)
}

// HandleMessage interprets an inbound text frame as a room subscribe/
// unsubscribe command. The feed itself is push-only, so this is the only
// thing a dashboard client ever sends.
func (m *Manager) HandleMessage(client *Client, message []byte) {
	var cmd struct {
		Subscribe   string `json:"subscribe"`
		Unsubscribe string `json:"unsubscribe"`
	}
	if err := json.Unmarshal(message, &cmd); err != nil {
		m.logger.Debug("ignoring malformed websocket message", "conn_id", client.ID, "err", err)
		return
	}
	if cmd.Subscribe != "" {
		m.JoinRoom(client.ID, cmd.Subscribe)
	}
	if cmd.Unsubscribe != "" {
		m.LeaveRoom(client.ID, cmd.Unsubscribe)
	}
}

// JoinRoom adds a client to a room.
func (m *Manager) JoinRoom(clientID, room string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, exists := m.clients[clientID]
	if !exists {
		return
	}

	if _, ok := m.rooms[room]; !ok {
		m.rooms[room] = make(map[string]*Client)
	}
	m.rooms[room][clientID] = client
	client.Rooms[room] = true
}

// LeaveRoom removes a client from a room.
func (m *Manager) LeaveRoom(clientID, room string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, exists := m.clients[clientID]
	if !exists {
		return
	}

	if members, ok := m.rooms[room]; ok {
		delete(members, clientID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
	delete(client.Rooms, room)
}

// BroadcastToRoom sends a message to all clients in a room.
func (m *Manager) BroadcastToRoom(room string, data []byte, excludeID string) {
	m.mu.RLock()
	members, exists := m.rooms[room]
	if !exists {
		m.mu.RUnlock()
		return
	}
	clients := make([]*Client, 0, len(members))
	for _, c := range members {
		if c.ID != excludeID {
			clients = append(clients, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range clients {
		if err := c.Send(data); err != nil {
			m.logger.Warn("broadcast send failed", "conn_id", c.ID, "room", room, "error", err)
		}
	}
}

// BroadcastEvent JSON-encodes evt and sends it to every client subscribed
// to room — the entry point entity drivers and the connection-lifecycle
// hooks use to publish to the dashboard.
func (m *Manager) BroadcastEvent(room string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		m.logger.Error("encoding websocket event", "error", err)
		return
	}
	m.BroadcastToRoom(room, data, "")
}

// SendToClient sends a message to a specific client.
func (m *Manager) SendToClient(clientID string, data []byte) {
	m.mu.RLock()
	client, exists := m.clients[clientID]
	m.mu.RUnlock()

	if !exists {
		return
	}
	if err := client.Send(data); err != nil {
		m.logger.Warn("send to client failed", "conn_id", clientID, "error", err)
	}
}

// Broadcast sends a message to all connected clients.
func (m *Manager) Broadcast(data []byte, excludeID string) {
	m.mu.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		if c.ID != excludeID {
			clients = append(clients, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range clients {
		if err := c.Send(data); err != nil {
			m.logger.Warn("broadcast send failed", "conn_id", c.ID, "error", err)
		}
	}
}

// Stats returns current WebSocket statistics.
func (m *Manager) Stats() ManagerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ManagerStats{
		TotalConnections: len(m.clients),
		TotalRooms:       len(m.rooms),
	}
}

// ManagerStats holds WebSocket manager metrics.
type ManagerStats struct {
	TotalConnections int `json:"total_connections"`
	TotalRooms       int `json:"total_rooms"`
}

func generateConnID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
