// Package requestid assigns a unique ID to every request for log correlation.
package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request ID.
const HeaderName = "X-Request-Id"

// LocalsKey is the fiber locals key the ID is stored under.
const LocalsKey = "request_id"

// New returns a middleware that generates a UUID per request and exposes it
// via locals and the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
