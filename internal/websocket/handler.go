package websocket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades admin dashboard requests to WebSocket connections and
// registers each one with a Manager; the connection itself only ever reads
// subscribe/unsubscribe commands, since event delivery is push-only.
type Handler struct {
	manager  *Manager
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler builds a Handler backed by manager. The dashboard is served
// same-origin by the admin server, so origin checking is intentionally
// permissive here; a reverse proxy fronting this endpoint is the place to
// restrict it further.
func NewHandler(manager *Manager, logger *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := h.manager.AddConnection(conn, r)
	h.logger.Debug("dashboard client connected", "conn_id", client.ID, "remote", client.RemoteAddr)

	go h.pumpInbound(client)
}

// pumpInbound reads subscribe/unsubscribe commands off client until the
// connection closes, then unregisters it from every room it had joined.
func (h *Handler) pumpInbound(client *Client) {
	defer h.disconnect(client)

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("dashboard websocket read error", "conn_id", client.ID, "error", err)
			}
			return
		}
		h.manager.HandleMessage(client, message)
	}
}

func (h *Handler) disconnect(client *Client) {
	h.manager.RemoveConnection(client.ID)
	client.Conn.Close()
	h.logger.Debug("dashboard client disconnected", "conn_id", client.ID)
}
