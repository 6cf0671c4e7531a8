package server

import (
	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.engagementService.CommentOnPost(c.Context(), user, postID, req.Content)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments. Public route; the
// visibility gate on the parent post decides access.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.optionalUser(c)
	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.engagementService.GetComments(c.Context(), viewer, postID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.engagementService.DeleteComment(c.Context(), user, commentID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// CreateReply handles POST /api/comments/:id/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, svcErr := s.engagementService.ReplyToComment(c.Context(), user, commentID, req.Content)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// GetReplies handles GET /api/comments/:id/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.optionalUser(c)
	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.engagementService.GetReplies(c.Context(), viewer, commentID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.LikeComment(c.Context(), user, commentID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// UnlikeComment handles DELETE /api/comments/:id/like
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.UnlikeComment(c.Context(), user, commentID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}
