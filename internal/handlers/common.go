package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path parameter. A non-numeric id is reported as
// ok=false and handled as a lookup miss by callers.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
