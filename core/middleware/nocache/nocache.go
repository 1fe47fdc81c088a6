// Package nocache disables client-side caching of served files.
package nocache

import "github.com/gofiber/fiber/v2"

// CacheControl is the directive set on every response.
const CacheControl = "no-store, no-cache, must-revalidate, max-age=0"

// New returns a middleware that stamps no-cache directives on every
// response, including error responses. Headers are set after the handler
// ran so the static file handler cannot override them.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, CacheControl)
		c.Set(fiber.HeaderPragma, "no-cache")
		return err
	}
}
