package server

import (
	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications?unread=true
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	unreadOnly := c.QueryBool("unread", false)
	result, svcErr := s.notificationService.List(c.Context(), user.ID, unreadOnly, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetUnreadNotificationCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadNotificationCount(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	count, svcErr := s.notificationService.UnreadCount(c.Context(), user.ID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"count": count})
}

// MarkNotificationRead handles POST /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	notificationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.notificationService.MarkRead(c.Context(), user.ID, notificationID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	if svcErr := s.notificationService.MarkAllRead(c.Context(), user.ID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

// DeleteNotification handles DELETE /api/notifications/:id
func (s *Server) DeleteNotification(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	notificationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.notificationService.Delete(c.Context(), user.ID, notificationID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}
