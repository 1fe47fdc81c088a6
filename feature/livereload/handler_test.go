package livereload

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupHandlerApp(t *testing.T) *fiber.App {
	t.Helper()

	s, err := NewService(t.TempDir(), Config{Enabled: true, DebounceMs: 50}, zap.NewNop())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	app := fiber.New()
	NewHandler(s).RegisterRoutes(app)
	return app
}

func TestHandleScript(t *testing.T) {
	app := setupHandlerApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/livereload.js", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "WebSocket")
	assert.Contains(t, string(body), "location.reload()")
}

func TestHandleSocket_RequiresUpgrade(t *testing.T) {
	app := setupHandlerApp(t)

	// A plain GET without the upgrade handshake is rejected.
	resp, err := app.Test(httptest.NewRequest("GET", "/livereload", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
