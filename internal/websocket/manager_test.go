package websocket

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gorilla/websocket"
)

func testManager() *Manager {
	return NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(id string) *Client {
	return &Client{ID: id, Conn: &websocket.Conn{}, Rooms: make(map[string]bool)}
}

func TestJoinRoomAddsClientToRoom(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()

	m.JoinRoom(c.ID, "events")

	if !c.Rooms["events"] {
		t.Fatal("expected client to have joined events room")
	}
	if _, ok := m.rooms["events"][c.ID]; !ok {
		t.Fatal("expected room to list the client")
	}
}

func TestLeaveRoomRemovesClientAndPrunesEmptyRoom(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()
	m.JoinRoom(c.ID, "events")

	m.LeaveRoom(c.ID, "events")

	if c.Rooms["events"] {
		t.Fatal("expected client to have left events room")
	}
	if _, ok := m.rooms["events"]; ok {
		t.Fatal("expected empty room to be pruned")
	}
}

func TestRemoveConnectionPrunesAllRooms(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()
	m.JoinRoom(c.ID, "events")
	m.JoinRoom(c.ID, "sensors")

	m.RemoveConnection(c.ID)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.clients[c.ID]; ok {
		t.Fatal("expected client removed from manager")
	}
	if _, ok := m.rooms["events"]; ok {
		t.Fatal("expected events room pruned")
	}
	if _, ok := m.rooms["sensors"]; ok {
		t.Fatal("expected sensors room pruned")
	}
}

func TestHandleMessageSubscribeJoinsRoom(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()

	m.HandleMessage(c, []byte(`{"subscribe":"climate.living_room"}`))

	if !c.Rooms["climate.living_room"] {
		t.Fatal("expected subscribe command to join the named room")
	}
}

func TestHandleMessageUnsubscribeLeavesRoom(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()
	m.JoinRoom(c.ID, "climate.living_room")

	m.HandleMessage(c, []byte(`{"unsubscribe":"climate.living_room"}`))

	if c.Rooms["climate.living_room"] {
		t.Fatal("expected unsubscribe command to leave the named room")
	}
}

func TestHandleMessageMalformedJSONIsIgnored(t *testing.T) {
	m := testManager()
	c := newTestClient("c1")
	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()

	m.HandleMessage(c, []byte(`not json`))

	if len(c.Rooms) != 0 {
		t.Fatalf("expected no room changes from malformed message, got %v", c.Rooms)
	}
}

func TestStatsReflectsClientsAndRooms(t *testing.T) {
	m := testManager()
	c1 := newTestClient("c1")
	c2 := newTestClient("c2")
	m.mu.Lock()
	m.clients[c1.ID] = c1
	m.clients[c2.ID] = c2
	m.mu.Unlock()
	m.JoinRoom(c1.ID, "events")
	m.JoinRoom(c2.ID, "events")

	stats := m.Stats()
	if stats.TotalConnections != 2 {
		t.Errorf("expected 2 connections, got %d", stats.TotalConnections)
	}
	if stats.TotalRooms != 1 {
		t.Errorf("expected 1 room, got %d", stats.TotalRooms)
	}
}
