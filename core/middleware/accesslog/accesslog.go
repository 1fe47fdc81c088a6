// Package accesslog emits one human-readable line per handled request.
package accesslog

import (
	"fmt"
	"io"

	"localserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that writes "[HTTP]" prefixed lines to w for
// every request. Handler errors are additionally reported through logg with
// the request ID attached.
func New(w io.Writer, logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// The framework error handler runs after this middleware, so the
		// response status is derived from the error when one occurred.
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
				logger.WithRequestID(logg, c).Error("Request failed", zap.Error(err))
			}
		}

		fmt.Fprintf(w, "[HTTP] %s - \"%s %s\" %d\n", c.IP(), c.Method(), c.Path(), status)
		return err
	}
}
