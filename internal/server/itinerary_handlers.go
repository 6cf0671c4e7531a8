package server

import (
	"wayfare/internal/models"
	"wayfare/internal/service"

	"github.com/gofiber/fiber/v2"
)

type itineraryRequest struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Destination   string            `json:"destination"`
	DurationDays  int               `json:"duration_days"`
	MainImageLink string            `json:"main_image_link"`
	Visibility    models.Visibility `json:"visibility"`
}

func (r itineraryRequest) toInput() service.CreateItineraryInput {
	return service.CreateItineraryInput{
		Title:         r.Title,
		Description:   r.Description,
		Destination:   r.Destination,
		DurationDays:  r.DurationDays,
		MainImageLink: r.MainImageLink,
		Visibility:    r.Visibility,
	}
}

// CreateItinerary handles POST /api/itineraries
func (s *Server) CreateItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req itineraryRequest
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	itinerary, svcErr := s.itineraryService.Create(c.Context(), user.ID, req.toInput())
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(itinerary)
}

// GetItinerary handles GET /api/itineraries/:id. Public route; hidden
// itineraries respond 404.
func (s *Server) GetItinerary(c *fiber.Ctx) error {
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.optionalUser(c)
	itinerary, svcErr := s.itineraryService.Get(c.Context(), viewer, itineraryID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(itinerary)
}

// GetItineraryFeed handles GET /api/feed/itineraries
func (s *Server) GetItineraryFeed(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.itineraryService.Feed(c.Context(), user, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetTopItineraries handles GET /api/discover/top-itineraries
func (s *Server) GetTopItineraries(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.itineraryService.Top(c.Context(), user, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetUserItineraries handles GET /api/users/:id/itineraries
func (s *Server) GetUserItineraries(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.itineraryService.UserItineraries(c.Context(), user, targetID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// GetSavedItineraries handles GET /api/users/me/saved/itineraries
func (s *Server) GetSavedItineraries(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c, defaultPageLimit)
	result, svcErr := s.itineraryService.SavedItineraries(c.Context(), user.ID, page.Limit, page.Offset)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(result)
}

// UpdateItinerary handles PUT /api/itineraries/:id
func (s *Server) UpdateItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req itineraryRequest
	if bodyErr := c.BodyParser(&req); bodyErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	itinerary, svcErr := s.itineraryService.Update(c.Context(), user.ID, itineraryID, req.toInput())
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(itinerary)
}

// DeleteItinerary handles DELETE /api/itineraries/:id
func (s *Server) DeleteItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.itineraryService.Delete(c.Context(), user.ID, itineraryID); svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"message": "Itinerary deleted"})
}

// LikeItinerary handles POST /api/itineraries/:id/like
func (s *Server) LikeItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.LikeItinerary(c.Context(), user, itineraryID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// UnlikeItinerary handles DELETE /api/itineraries/:id/like
func (s *Server) UnlikeItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.UnlikeItinerary(c.Context(), user, itineraryID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// SaveItinerary handles POST /api/itineraries/:id/save
func (s *Server) SaveItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.SaveItinerary(c.Context(), user, itineraryID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}

// UnsaveItinerary handles DELETE /api/itineraries/:id/save
func (s *Server) UnsaveItinerary(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	itineraryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, svcErr := s.engagementService.UnsaveItinerary(c.Context(), user, itineraryID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}
	return c.JSON(fiber.Map{"status": status})
}
