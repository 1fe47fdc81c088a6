package server

import (
	"io"
	"time"

	"localserve/core/middleware/accesslog"
	"localserve/core/middleware/nocache"
	"localserve/core/middleware/requestid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New builds the Fiber application serving cfg.Root as static files.
// Access log lines are written to accessLog; handler errors go to logg.
func New(cfg Config, logg *zap.Logger, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// Middleware Registration
	// 1. Request ID (must be first to trace everything)
	app.Use(requestid.New())

	// 2. Access log
	app.Use(accesslog.New(accessLog, logg))

	// 3. No-cache headers on every response
	app.Use(nocache.New())

	// Static files. The internal file handler cache is disabled so edits
	// show up on the next request.
	app.Static("/", cfg.Root, fiber.Static{
		Index:         cfg.Homepage,
		Browse:        cfg.Browse,
		CacheDuration: -1 * time.Second,
	})

	return app
}
