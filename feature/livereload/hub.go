package livereload

import (
	"sync"

	"github.com/gofiber/websocket/v2"
)

// conn is the subset of the websocket connection the hub needs.
type conn interface {
	WriteMessage(messageType int, data []byte) error
}

// hub tracks connected clients and fans reload messages out to them.
// Safe for concurrent use; the watcher goroutine broadcasts while handler
// goroutines add and remove their connections.
type hub struct {
	mu      sync.Mutex
	clients map[conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[conn]struct{})}
}

func (h *hub) add(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// broadcast sends msg to every client, dropping the ones that fail; a dead
// connection is cleaned up by its handler anyway.
func (h *hub) broadcast(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			delete(h.clients, c)
			continue
		}
		sent++
	}
	return sent
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
