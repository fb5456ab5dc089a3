package server

import (
	"quill/internal/models"
	"quill/internal/service"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comments.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	body := validation.ParseBody(c.Body())

	in, violations := validation.CommentCreate(body)
	if len(violations) > 0 {
		return models.RespondWithError(c, models.NewValidationError(violations...))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		PostID:  in.PostID,
		Content: in.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "", comment)
}

// DeleteComment handles DELETE /comments/:id.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Comment")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.commentService.DeleteComment(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Comment deleted successfully", nil)
}
