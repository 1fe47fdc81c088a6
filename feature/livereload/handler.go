package livereload

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// clientScript is served at /livereload.js; pages opt in with
// <script src="/livereload.js"></script>.
const clientScript = `(function () {
  var url = (location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/livereload";
  function connect() {
    var ws = new WebSocket(url);
    ws.onmessage = function (ev) {
      if (ev.data === "reload") location.reload();
    };
    ws.onclose = function () {
      setTimeout(connect, 1000);
    };
  }
  connect();
})();
`

// Handler handles HTTP requests for live reload.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the live reload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/livereload.js", h.HandleScript)
	app.Use("/livereload", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/livereload", websocket.New(h.HandleSocket))
}

// HandleScript serves the reload client script.
func (h *Handler) HandleScript(c *fiber.Ctx) error {
	c.Type("js")
	return c.SendString(clientScript)
}

// HandleSocket keeps the connection registered with the hub until the
// client goes away. Inbound frames are drained and ignored; the protocol
// is server-to-client only.
func (h *Handler) HandleSocket(conn *websocket.Conn) {
	h.service.hub.add(conn)
	defer h.service.hub.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
