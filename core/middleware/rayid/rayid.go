package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request id.
const Header = "X-Ray-ID"

// New returns a middleware that tags every request with a fresh id, stored
// in the "ray_id" local and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("ray_id", id)
		c.Set(Header, id)
		return c.Next()
	}
}
