package server

import (
	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboard handles GET /api/admin/dashboard
func (s *Server) AdminDashboard(c *fiber.Ctx) error {
	stats, err := s.adminService.Dashboard(c.Context())
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(stats)
}

// AdminPendingPosts handles GET /api/admin/posts/pending
func (s *Server) AdminPendingPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPageLimit)
	result, err := s.adminService.PendingPosts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(result)
}

// AdminPendingItineraries handles GET /api/admin/itineraries/pending
func (s *Server) AdminPendingItineraries(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPageLimit)
	result, err := s.adminService.PendingItineraries(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(result)
}

// AdminListUsers handles GET /api/admin/users; ?q= narrows by name.
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPageLimit)
	result, err := s.adminService.ListUsers(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(result)
}

// BanUser handles POST /api/admin/users/:id/ban
func (s *Server) BanUser(c *fiber.Ctx) error {
	admin, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.adminService.BanUser(c.Context(), admin, targetID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "User banned"})
}

// UnbanUser handles POST /api/admin/users/:id/unban
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.adminService.UnbanUser(c.Context(), targetID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "User unbanned"})
}

// ApprovePost handles POST /api/admin/posts/:id/approve
func (s *Server) ApprovePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	// Default to approving when the body is absent.
	approved := true
	if bodyErr := c.BodyParser(&req); bodyErr == nil && req.Approved != nil {
		approved = *req.Approved
	}

	if svcErr := s.adminService.ApprovePost(c.Context(), postID, approved); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"approved": approved})
}

// AdminDeleteItinerary handles DELETE /api/admin/itineraries/:id
func (s *Server) AdminDeleteItinerary(c *fiber.Ctx) error {
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.itineraryService.AdminDelete(c.Context(), itineraryID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Itinerary deleted"})
}

// ApproveItinerary handles POST /api/admin/itineraries/:id/approve
func (s *Server) ApproveItinerary(c *fiber.Ctx) error {
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	approved := true
	if bodyErr := c.BodyParser(&req); bodyErr == nil && req.Approved != nil {
		approved = *req.Approved
	}

	if svcErr := s.adminService.ApproveItinerary(c.Context(), itineraryID, approved); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"approved": approved})
}
