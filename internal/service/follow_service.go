package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
)

// FollowService provides follow graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the follow edge from userID to targetID. The edge, both
// counter updates and the notification to the followee commit together.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewInvalidOperationError("You cannot follow yourself")
	}

	follower, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.Banned {
		return models.NewNotFoundError("User", targetID)
	}

	notif := &models.Notification{
		UserID:  target.ID,
		Type:    models.NotificationFollow,
		Content: follower.FullName + " started following you",
		ActorID: &follower.ID,
	}
	return s.followRepo.Create(ctx, &models.FollowEdge{
		FollowerID: userID,
		FolloweeID: targetID,
	}, notif)
}

// Unfollow removes the follow edge. No notification is produced.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewInvalidOperationError("You cannot unfollow yourself")
	}
	return s.followRepo.Delete(ctx, userID, targetID)
}

// IsFollowing reports whether userID follows targetID.
func (s *FollowService) IsFollowing(ctx context.Context, userID, targetID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, targetID)
}

// GetFollowers returns a page of users following targetID, newest first.
// Private profiles only expose their follower list to permitted viewers.
func (s *FollowService) GetFollowers(ctx context.Context, viewer *models.User, targetID uint, limit, offset int) (*models.Page[models.UserSummary], error) {
	if err := s.requireProfileAccess(ctx, viewer, targetID); err != nil {
		return nil, err
	}

	edges, total, err := s.followRepo.ListFollowers(ctx, targetID, limit, offset)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(edges))
	for _, edge := range edges {
		summaries = append(summaries, summarize(&edge.Follower, edge.CreatedAt))
	}
	return models.NewPage(summaries, total, offset, limit), nil
}

// GetFollowing returns a page of users that targetID follows, newest first.
func (s *FollowService) GetFollowing(ctx context.Context, viewer *models.User, targetID uint, limit, offset int) (*models.Page[models.UserSummary], error) {
	if err := s.requireProfileAccess(ctx, viewer, targetID); err != nil {
		return nil, err
	}

	edges, total, err := s.followRepo.ListFollowing(ctx, targetID, limit, offset)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(edges))
	for _, edge := range edges {
		summaries = append(summaries, summarize(&edge.Followee, edge.CreatedAt))
	}
	return models.NewPage(summaries, total, offset, limit), nil
}

// GetSuggested returns follow suggestions for the user, most-followed
// first.
func (s *FollowService) GetSuggested(ctx context.Context, userID uint, limit int) ([]models.UserSummary, error) {
	users, err := s.followRepo.Suggested(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, summarize(&users[i], zeroTime))
	}
	return summaries, nil
}

func (s *FollowService) requireProfileAccess(ctx context.Context, viewer *models.User, targetID uint) error {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	isFollower := false
	if viewer != nil && viewer.ID != targetID {
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, targetID)
		if err != nil {
			return err
		}
	}
	if !CanViewProfile(viewer, target, isFollower) {
		return models.NewNotFoundError("User", targetID)
	}
	return nil
}
