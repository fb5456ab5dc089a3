package server

import (
	"quill/internal/models"
	"quill/internal/service"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	body := validation.ParseBody(c.Body())

	in, violations := validation.PostCreate(body)
	if len(violations) > 0 {
		return models.RespondWithError(c, models.NewValidationError(violations...))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusCreated, "", post)
}

// GetPosts handles GET /posts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "", posts)
}

// GetPost handles GET /posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "", post)
}

// UpdatePost handles PATCH /posts/:id. The existence check runs before body
// validation, so a patch against a missing post is a 404 even with a bad body.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if _, err := s.postService.GetPost(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	body := validation.ParseBody(c.Body())
	in, violations := validation.PostPatch(body)
	if len(violations) > 0 {
		return models.RespondWithError(c, models.NewValidationError(violations...))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		PostID:  id,
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "", post)
}

// DeletePost handles DELETE /posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.postService.DeletePost(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return models.Respond(c, fiber.StatusOK, "Post deleted successfully", nil)
}
