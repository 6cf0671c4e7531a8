package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/validation"
)

// PostService provides post business logic.
type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Caption    string
	Details    string
	Location   string
	ImageLinks []string
	Visibility models.Visibility
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Create publishes a post and bumps the author's post counter.
func (s *PostService) Create(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	if in.Caption == "" {
		return nil, models.NewValidationError("Caption is required")
	}
	if in.Visibility == "" {
		in.Visibility = models.VisibilityAll
	}
	if err := validation.ValidateVisibility(in.Visibility); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		UserID:     userID,
		Caption:    in.Caption,
		Details:    in.Details,
		Location:   in.Location,
		ImageLinks: in.ImageLinks,
		Visibility: in.Visibility,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// Get returns a single post if the viewer may see it, counts the view and
// fills the viewer's engagement flags.
func (s *PostService) Get(ctx context.Context, viewer *models.User, postID uint) (*models.Post, error) {
	post, err := s.requireAccess(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.IncViewCount(ctx, postID); err != nil {
		return nil, err
	}
	post.ViewCount++
	if viewer != nil {
		if err := s.postRepo.MarkEngagement(ctx, viewer.ID, []*models.Post{post}); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// Feed returns the viewer's home feed: their own posts, public posts and
// followers-only posts from accounts they follow.
func (s *PostService) Feed(ctx context.Context, viewer *models.User, sort string, limit, offset int) (*models.Page[*models.Post], error) {
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

	posts, total, err := s.postRepo.Feed(ctx, viewerID, followingIDs, sort, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.MarkEngagement(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	return models.NewPage(posts, total, offset, limit), nil
}

// UserPosts returns a user's posts as seen by the viewer: owners see
// everything, followers additionally see followers-only posts, everyone
// else sees public posts only.
func (s *PostService) UserPosts(ctx context.Context, viewer *models.User, targetID uint, limit, offset int) (*models.Page[*models.Post], error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	isFollower := false
	if viewer != nil && viewer.ID != targetID {
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, targetID)
		if err != nil {
			return nil, err
		}
	}
	if !CanViewProfile(viewer, target, isFollower) {
		return nil, models.NewNotFoundError("User", targetID)
	}

	includeFollowersOnly := isFollower ||
		(viewer != nil && (viewer.ID == targetID || viewer.IsAdmin()))
	// Only the owner and admins see posts still awaiting moderation.
	includePending := viewer != nil && (viewer.ID == targetID || viewer.IsAdmin())
	posts, total, err := s.postRepo.ListByUser(ctx, targetID, includeFollowersOnly, includePending, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewer != nil {
		if err := s.postRepo.MarkEngagement(ctx, viewer.ID, posts); err != nil {
			return nil, err
		}
	}
	return models.NewPage(posts, total, offset, limit), nil
}

// SavedPosts returns the viewer's bookmarked posts, most recently saved
// first.
func (s *PostService) SavedPosts(ctx context.Context, userID uint, limit, offset int) (*models.Page[*models.Post], error) {
	posts, total, err := s.postRepo.ListSaved(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.MarkEngagement(ctx, userID, posts); err != nil {
		return nil, err
	}
	return models.NewPage(posts, total, offset, limit), nil
}

// Update edits the user's own post.
func (s *PostService) Update(ctx context.Context, userID, postID uint, in CreatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Caption != "" {
		post.Caption = in.Caption
	}
	if in.Details != "" {
		post.Details = in.Details
	}
	if in.Location != "" {
		post.Location = in.Location
	}
	if in.ImageLinks != nil {
		post.ImageLinks = in.ImageLinks
	}
	if in.Visibility != "" {
		if err := validation.ValidateVisibility(in.Visibility); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Visibility = in.Visibility
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the user's own post and decrements their post counter.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	return s.postRepo.Delete(ctx, postID, userID)
}

func (s *PostService) requireAccess(ctx context.Context, viewer *models.User, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Banned authors disappear for everyone except themselves and admins.
	if post.User.Banned && (viewer == nil || (!viewer.IsAdmin() && viewer.ID != post.UserID)) {
		return nil, models.NewNotFoundError("Post", postID)
	}
	isFollower := false
	if viewer != nil && viewer.ID != post.UserID && post.Visibility == models.VisibilityFollowers {
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, post.UserID)
		if err != nil {
			return nil, err
		}
	}
	if !CanViewContent(post.Visibility, post.UserID, post.ApprovedByAdmin, viewer, isFollower) {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}
