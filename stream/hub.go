// Package stream pushes narration and render events to connected viewer
// pages over websockets. The hub doubles as the narration sink and the
// render adapter of the running session.
package stream

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one message on the wire.
type Event struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Index    int    `json:"index"`
}

// Event types consumed by the viewer page.
const (
	EventClear       = "clear"
	EventLog         = "log"
	EventLogError    = "log_error"
	EventRenderReset = "render_reset"
	EventRender      = "render"
	EventHighlight   = "highlight"
)

type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// The page is served cross-origin during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the connection and keeps it registered until the client
// goes away. Clients never send anything meaningful; the read loop only
// exists to notice the close.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("[Hub] Upgrade failed: %v\n", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// ClientCount reports connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// narration.Sink

func (h *Hub) Clear() {
	h.broadcast(Event{Type: EventClear})
}

func (h *Hub) Line(text string) {
	h.broadcast(Event{Type: EventLog, Text: text})
}

func (h *Hub) ErrorLine(text string) {
	h.broadcast(Event{Type: EventLogError, Text: text})
}

// viewer.RenderAdapter

func (h *Hub) Reconstruct(imageURL string) {
	h.broadcast(Event{Type: EventRenderReset, ImageURL: imageURL})
}

func (h *Hub) LoadImage(imageURL string) {
	h.broadcast(Event{Type: EventRender, ImageURL: imageURL})
}

func (h *Hub) Highlight(index int) {
	h.broadcast(Event{Type: EventHighlight, Index: index})
}
