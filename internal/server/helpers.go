package server

import (
	"strconv"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam extracts the :id route parameter. Anything that is not a
// positive integer behaves like a resource that does not exist.
func parseIDParam(c *fiber.Ctx, resource string) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource, raw)
	}
	return uint(id), nil
}
