package server

import (
	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Caption    string            `json:"caption"`
		Details    string            `json:"details"`
		Location   string            `json:"location"`
		ImageLinks []string          `json:"image_links"`
		Visibility models.Visibility `json:"visibility"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, svcErr := s.postService.Create(c.Context(), user.ID, service.CreatePostInput{
		Caption:    req.Caption,
		Details:    req.Details,
		Location:   req.Location,
		ImageLinks: req.ImageLinks,
		Visibility: req.Visibility,
	})
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id. Public route; a follower token
// unlocks followers-only posts. Hidden posts respond 404.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.optionalUser(c)
	post, svcErr := s.postService.Get(c.Context(), viewer, postID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(post)
}

// GetFeed handles GET /api/feed?sort=recent|top
func (s *Server) GetFeed(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.postService.Feed(c.Context(), user, c.Query("sort", repository.SortRecent), page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetTopPosts handles GET /api/discover/top
func (s *Server) GetTopPosts(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.postService.Feed(c.Context(), user, repository.SortTop, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.postService.UserPosts(c.Context(), user, targetID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetSavedPosts handles GET /api/users/me/saved/posts
func (s *Server) GetSavedPosts(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.postService.SavedPosts(c.Context(), user.ID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Caption    string            `json:"caption"`
		Details    string            `json:"details"`
		Location   string            `json:"location"`
		ImageLinks []string          `json:"image_links"`
		Visibility models.Visibility `json:"visibility"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, svcErr := s.postService.Update(c.Context(), user.ID, postID, service.CreatePostInput{
		Caption:    req.Caption,
		Details:    req.Details,
		Location:   req.Location,
		ImageLinks: req.ImageLinks,
		Visibility: req.Visibility,
	})
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.postService.Delete(c.Context(), user.ID, postID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like. Liking an already liked
// post is not an error; the response reports what happened.
func (s *Server) LikePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.LikePost(c.Context(), user, postID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.UnlikePost(c.Context(), user, postID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// SavePost handles POST /api/posts/:id/save
func (s *Server) SavePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.SavePost(c.Context(), user, postID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// UnsavePost handles DELETE /api/posts/:id/save
func (s *Server) UnsavePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.UnsavePost(c.Context(), user, postID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// SharePost handles POST /api/posts/:id/share. Shares are never
// deduplicated; each one mints a share token.
func (s *Server) SharePost(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		SharedTo string `json:"shared_to"`
	}
	// Body is optional for shares.
	_ = c.BodyParser(&req)

	share, svcErr := s.engagementService.SharePost(c.Context(), user, postID, req.SharedTo)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(share)
}
