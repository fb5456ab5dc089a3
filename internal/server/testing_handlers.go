package server

import (
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/seed"

	"github.com/gofiber/fiber/v2"
)

// ResetData handles POST /testing/reset. It wipes every resource table so an
// e2e run starts from a clean slate. The route is only mounted outside
// production. Sequences are left untouched, so IDs keep climbing across
// resets and deleted IDs are never handed out again.
func (s *Server) ResetData(c *fiber.Ctx) error {
	if err := seed.Reset(s.db); err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "data reset complete")
	return models.Respond(c, fiber.StatusOK, "Data reset", nil)
}
