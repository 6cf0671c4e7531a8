package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/validation"
)

// ItineraryService provides itinerary business logic. Itinerary mutations
// feed the travel statistics recomputation.
type ItineraryService struct {
	itineraryRepo repository.ItineraryRepository
	followRepo    repository.FollowRepository
	statsSvc      *StatisticsService
}

// CreateItineraryInput carries the fields for a new itinerary.
type CreateItineraryInput struct {
	Title         string
	Description   string
	Destination   string
	DurationDays  int
	MainImageLink string
	Visibility    models.Visibility
}

// NewItineraryService returns a new ItineraryService.
func NewItineraryService(itineraryRepo repository.ItineraryRepository, followRepo repository.FollowRepository, statsSvc *StatisticsService) *ItineraryService {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		followRepo:    followRepo,
		statsSvc:      statsSvc,
	}
}

// Create publishes an itinerary and recomputes the author's travel
// statistics.
func (s *ItineraryService) Create(ctx context.Context, userID uint, in CreateItineraryInput) (*models.Itinerary, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Destination == "" {
		return nil, models.NewValidationError("Destination is required")
	}
	if in.Visibility == "" {
		in.Visibility = models.VisibilityAll
	}
	if err := validation.ValidateVisibility(in.Visibility); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	itinerary := &models.Itinerary{
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		Destination:   in.Destination,
		DurationDays:  in.DurationDays,
		MainImageLink: in.MainImageLink,
		Visibility:    in.Visibility,
	}
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		return nil, err
	}
	if _, err := s.statsSvc.Recompute(ctx, userID); err != nil {
		return nil, err
	}
	return s.itineraryRepo.GetByID(ctx, itinerary.ID)
}

// Get returns a single itinerary if the viewer may see it.
func (s *ItineraryService) Get(ctx context.Context, viewer *models.User, itineraryID uint) (*models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if itinerary.User.Banned && (viewer == nil || (!viewer.IsAdmin() && viewer.ID != itinerary.UserID)) {
		return nil, models.NewNotFoundError("Itinerary", itineraryID)
	}
	isFollower := false
	if viewer != nil && viewer.ID != itinerary.UserID && itinerary.Visibility == models.VisibilityFollowers {
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, itinerary.UserID)
		if err != nil {
			return nil, err
		}
	}
	if !CanViewContent(itinerary.Visibility, itinerary.UserID, itinerary.ApprovedByAdmin, viewer, isFollower) {
		return nil, models.NewNotFoundError("Itinerary", itineraryID)
	}
	if viewer != nil {
		if err := s.itineraryRepo.MarkEngagement(ctx, viewer.ID, []*models.Itinerary{itinerary}); err != nil {
			return nil, err
		}
	}
	return itinerary, nil
}

// Feed returns the itinerary feed scoped to what the viewer may see.
func (s *ItineraryService) Feed(ctx context.Context, viewer *models.User, limit, offset int) (*models.Page[*models.Itinerary], error) {
	var viewerID uint
	var followingIDs []uint
	if viewer != nil {
		viewerID = viewer.ID
		var err error
		followingIDs, err = s.followRepo.FollowingIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
	}

	itineraries, total, err := s.itineraryRepo.Feed(ctx, viewerID, followingIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.itineraryRepo.MarkEngagement(ctx, viewerID, itineraries); err != nil {
		return nil, err
	}
	return models.NewPage(itineraries, total, offset, limit), nil
}

// Top returns the highest ranked public itineraries for the discover
// page. Ranking is by likes, then rating, then recency.
func (s *ItineraryService) Top(ctx context.Context, viewer *models.User, limit, offset int) (*models.Page[*models.Itinerary], error) {
	itineraries, total, err := s.itineraryRepo.Top(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewer != nil {
		if err := s.itineraryRepo.MarkEngagement(ctx, viewer.ID, itineraries); err != nil {
			return nil, err
		}
	}
	return models.NewPage(itineraries, total, offset, limit), nil
}

// UserItineraries returns a user's itineraries as seen by the viewer.
func (s *ItineraryService) UserItineraries(ctx context.Context, viewer *models.User, targetID uint, limit, offset int) (*models.Page[*models.Itinerary], error) {
	isFollower := false
	if viewer != nil && viewer.ID != targetID {
		var err error
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, targetID)
		if err != nil {
			return nil, err
		}
	}
	includeFollowersOnly := isFollower ||
		(viewer != nil && (viewer.ID == targetID || viewer.IsAdmin()))
	includePending := viewer != nil && (viewer.ID == targetID || viewer.IsAdmin())

	itineraries, total, err := s.itineraryRepo.ListByUser(ctx, targetID, includeFollowersOnly, includePending, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewer != nil {
		if err := s.itineraryRepo.MarkEngagement(ctx, viewer.ID, itineraries); err != nil {
			return nil, err
		}
	}
	return models.NewPage(itineraries, total, offset, limit), nil
}

// SavedItineraries returns the viewer's bookmarked itineraries.
func (s *ItineraryService) SavedItineraries(ctx context.Context, userID uint, limit, offset int) (*models.Page[*models.Itinerary], error) {
	itineraries, total, err := s.itineraryRepo.ListSaved(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.itineraryRepo.MarkEngagement(ctx, userID, itineraries); err != nil {
		return nil, err
	}
	return models.NewPage(itineraries, total, offset, limit), nil
}

// Update edits the user's own itinerary. A destination change triggers a
// travel statistics recomputation.
func (s *ItineraryService) Update(ctx context.Context, userID, itineraryID uint, in CreateItineraryInput) (*models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	if itinerary.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own itineraries")
	}

	destinationChanged := false
	if in.Title != "" {
		itinerary.Title = in.Title
	}
	if in.Description != "" {
		itinerary.Description = in.Description
	}
	if in.Destination != "" && in.Destination != itinerary.Destination {
		itinerary.Destination = in.Destination
		destinationChanged = true
	}
	if in.DurationDays > 0 {
		itinerary.DurationDays = in.DurationDays
	}
	if in.MainImageLink != "" {
		itinerary.MainImageLink = in.MainImageLink
	}
	if in.Visibility != "" {
		if err := validation.ValidateVisibility(in.Visibility); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		itinerary.Visibility = in.Visibility
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		return nil, err
	}
	if destinationChanged {
		if _, err := s.statsSvc.Recompute(ctx, userID); err != nil {
			return nil, err
		}
	}
	return itinerary, nil
}

// Delete removes the user's own itinerary and recomputes their travel
// statistics.
func (s *ItineraryService) Delete(ctx context.Context, userID, itineraryID uint) error {
	if err := s.itineraryRepo.Delete(ctx, itineraryID, userID); err != nil {
		return err
	}
	_, err := s.statsSvc.Recompute(ctx, userID)
	return err
}

// AdminDelete removes any itinerary and recomputes the author's travel
// statistics. Callers are verified admins.
func (s *ItineraryService) AdminDelete(ctx context.Context, itineraryID uint) error {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return err
	}
	if err := s.itineraryRepo.DeleteAny(ctx, itineraryID); err != nil {
		return err
	}
	_, err = s.statsSvc.Recompute(ctx, itinerary.UserID)
	return err
}
