package server

import (
	"wayfare/internal/models"
	"wayfare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:username. The route is public;
// authenticated viewers may additionally see private profiles they follow.
// A private profile the viewer may not see responds 404, never 403.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	viewer := s.optionalUser(c)
	user, err := s.userService.GetProfile(c.Context(), viewer, username)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Username          string   `json:"username"`
		Bio               string   `json:"bio"`
		ProfileImage      string   `json:"profile_image"`
		CoverImage        string   `json:"cover_image"`
		CountriesExplored []string `json:"countries_explored"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, svcErr := s.userService.UpdateProfile(c.Context(), user.ID, service.UpdateProfileInput{
		Username:          req.Username,
		Bio:               req.Bio,
		ProfileImage:      req.ProfileImage,
		CoverImage:        req.CoverImage,
		CountriesExplored: req.CountriesExplored,
	})
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(updated)
}

// GetMySettings handles GET /api/users/me/settings. The payload shape
// depends on the caller's role.
func (s *Server) GetMySettings(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	settings, svcErr := s.userService.GetSettings(c.Context(), user)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(settings)
}

// UpdateMyAccountSettings handles PUT /api/users/me/settings/account
func (s *Server) UpdateMyAccountSettings(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		AccountPrivate bool `json:"account_private"`
		SuggestAccount bool `json:"suggest_account"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	settings, svcErr := s.userService.UpdateAccountSettings(c.Context(), user.ID, req.AccountPrivate, req.SuggestAccount)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(settings)
}

// UpdateMyNotificationSettings handles PUT /api/users/me/settings/notifications.
// Members toggle push/email, admins toggle admin/security; the other
// role's toggles stay as they are.
func (s *Server) UpdateMyNotificationSettings(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		PushNotification  bool `json:"push_notification"`
		EmailNotification bool `json:"email_notification"`
		AdminNotification bool `json:"admin_notification"`
		SecurityAlerts    bool `json:"security_alerts"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	settings, svcErr := s.userService.UpdateNotificationSettings(c.Context(), user,
		req.PushNotification, req.EmailNotification, req.AdminNotification, req.SecurityAlerts)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(settings)
}

// UpdateMyPrivacySettings handles PUT /api/users/me/settings/privacy
func (s *Server) UpdateMyPrivacySettings(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		TwoFactorEnabled    bool   `json:"two_factor_enabled"`
		RememberMe          bool   `json:"remember_me"`
		TrustedContactEmail string `json:"trusted_contact_email"`
	}
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	settings, svcErr := s.userService.UpdatePrivacySettings(c.Context(), user.ID,
		req.TwoFactorEnabled, req.RememberMe, req.TrustedContactEmail)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(settings)
}

// DeactivateMyAccount handles POST /api/users/me/deactivate. Logging in
// again reactivates the account.
func (s *Server) DeactivateMyAccount(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	if svcErr := s.userService.DeactivateAccount(c.Context(), user.ID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Account deactivated"})
}

// DeleteMyAccount handles DELETE /api/users/me
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	if svcErr := s.userService.DeleteAccount(c.Context(), user.ID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetMyStatistics handles GET /api/users/me/statistics
func (s *Server) GetMyStatistics(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	stats, svcErr := s.statsService.Get(c.Context(), user.ID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(stats)
}

// SearchUsers handles GET /api/users/search?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPageLimit)
	result, err := s.userService.Search(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.JSON(result)
}
