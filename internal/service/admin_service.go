package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
)

// AdminService provides moderation operations. All callers are verified
// admins before these run.
type AdminService struct {
	userRepo      repository.UserRepository
	postRepo      repository.PostRepository
	itineraryRepo repository.ItineraryRepository
}

// NewAdminService returns a new AdminService.
func NewAdminService(userRepo repository.UserRepository, postRepo repository.PostRepository, itineraryRepo repository.ItineraryRepository) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		postRepo:      postRepo,
		itineraryRepo: itineraryRepo,
	}
}

// BanUser bans a member. Banned users drop out of feeds, suggestions and
// search immediately; their rows stay intact for a later unban.
func (s *AdminService) BanUser(ctx context.Context, admin *models.User, targetID uint) error {
	if admin.ID == targetID {
		return models.NewInvalidOperationError("You cannot ban yourself")
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return models.NewForbiddenError("Admins cannot be banned")
	}
	return s.userRepo.SetBanned(ctx, targetID, true)
}

// UnbanUser lifts a ban.
func (s *AdminService) UnbanUser(ctx context.Context, targetID uint) error {
	return s.userRepo.SetBanned(ctx, targetID, false)
}

// ApprovePost marks a post as admin approved.
func (s *AdminService) ApprovePost(ctx context.Context, postID uint, approved bool) error {
	return s.postRepo.SetApproved(ctx, postID, approved)
}

// ApproveItinerary marks an itinerary as admin approved.
func (s *AdminService) ApproveItinerary(ctx context.Context, itineraryID uint, approved bool) error {
	return s.itineraryRepo.SetApproved(ctx, itineraryID, approved)
}

// DashboardStats aggregates the headline numbers for the admin overview.
type DashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	BannedUsers        int64 `json:"banned_users"`
	TotalPosts         int64 `json:"total_posts"`
	PendingPosts       int64 `json:"pending_posts"`
	TotalItineraries   int64 `json:"total_itineraries"`
	PendingItineraries int64 `json:"pending_itineraries"`
}

// Dashboard returns platform wide totals and moderation backlog sizes.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	_, totalUsers, err := s.userRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	banned, err := s.userRepo.CountBanned(ctx)
	if err != nil {
		return nil, err
	}
	totalPosts, pendingPosts, err := s.postRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	totalItineraries, pendingItineraries, err := s.itineraryRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalUsers:         totalUsers,
		BannedUsers:        banned,
		TotalPosts:         totalPosts,
		PendingPosts:       pendingPosts,
		TotalItineraries:   totalItineraries,
		PendingItineraries: pendingItineraries,
	}, nil
}

// PendingPosts lists posts awaiting moderation, oldest first.
func (s *AdminService) PendingPosts(ctx context.Context, limit, offset int) (*models.Page[*models.Post], error) {
	posts, total, err := s.postRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPage(posts, total, offset, limit), nil
}

// PendingItineraries lists itineraries awaiting moderation, oldest first.
func (s *AdminService) PendingItineraries(ctx context.Context, limit, offset int) (*models.Page[*models.Itinerary], error) {
	itineraries, total, err := s.itineraryRepo.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPage(itineraries, total, offset, limit), nil
}

// ListUsers returns a page of all accounts for the admin dashboard. A
// non-empty query narrows the listing by username or full name.
func (s *AdminService) ListUsers(ctx context.Context, query string, limit, offset int) (*models.Page[models.User], error) {
	var (
		users []models.User
		total int64
		err   error
	)
	if query != "" {
		users, total, err = s.userRepo.Search(ctx, query, limit, offset)
	} else {
		users, total, err = s.userRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	return models.NewPage(users, total, offset, limit), nil
}
