package server

import (
	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.followService.Follow(c.Context(), user.ID, targetID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"following": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.followService.Unfollow(c.Context(), user.ID, targetID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"following": false})
}

// GetFollowStatus handles GET /api/users/:id/follow
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, svcErr := s.followService.IsFollowing(c.Context(), user.ID, targetID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/users/:id/followers. Follower lists of a
// private profile are only visible to the owner, their followers and
// admins; everyone else gets 404.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.followService.GetFollowers(c.Context(), user, targetID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.followService.GetFollowing(c.Context(), user, targetID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetSuggestedUsers handles GET /api/discover/suggested
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	suggested, svcErr := s.followService.GetSuggested(c.Context(), user.ID, page.Limit)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"data": suggested})
}
