package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"

	"github.com/google/uuid"
)

// EngagementService provides like, save, share, comment and reply
// business logic across posts, itineraries and comments.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
	itineraryRepo  repository.ItineraryRepository
	followRepo     repository.FollowRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	postRepo repository.PostRepository,
	itineraryRepo repository.ItineraryRepository,
	followRepo repository.FollowRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		itineraryRepo:  itineraryRepo,
		followRepo:     followRepo,
	}
}

// requirePostAccess loads the post and enforces the visibility gate.
// Inaccessible posts surface as NotFound.
func (s *EngagementService) requirePostAccess(ctx context.Context, viewer *models.User, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
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

func (s *EngagementService) requireItineraryAccess(ctx context.Context, viewer *models.User, itineraryID uint) (*models.Itinerary, error) {
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
	return itinerary, nil
}

// LikePost likes a post on behalf of the user. Liking twice is
// acknowledged without error and without a second increment or
// notification.
func (s *EngagementService) LikePost(ctx context.Context, user *models.User, postID uint) (models.EngagementStatus, error) {
	post, err := s.requirePostAccess(ctx, user, postID)
	if err != nil {
		return "", err
	}
	notif := notifyIfNotSelf(post.UserID, user, models.NotificationLike, user.FullName+" liked your post")
	if notif != nil {
		notif.PostID = &post.ID
	}
	return s.engagementRepo.Add(ctx, models.KindPostLike, user.ID, postID, notif)
}

// UnlikePost removes the user's like. Removing an absent like is not an
// error.
func (s *EngagementService) UnlikePost(ctx context.Context, user *models.User, postID uint) (models.EngagementStatus, error) {
	if _, err := s.requirePostAccess(ctx, user, postID); err != nil {
		return "", err
	}
	return s.engagementRepo.Remove(ctx, models.KindPostLike, user.ID, postID)
}

// SavePost bookmarks a post. Saves produce no notification.
func (s *EngagementService) SavePost(ctx context.Context, user *models.User, postID uint) (models.EngagementStatus, error) {
	if _, err := s.requirePostAccess(ctx, user, postID); err != nil {
		return "", err
	}
	return s.engagementRepo.Add(ctx, models.KindPostSave, user.ID, postID, nil)
}

// UnsavePost removes a bookmark.
func (s *EngagementService) UnsavePost(ctx context.Context, user *models.User, postID uint) (models.EngagementStatus, error) {
	if _, err := s.requirePostAccess(ctx, user, postID); err != nil {
		return "", err
	}
	return s.engagementRepo.Remove(ctx, models.KindPostSave, user.ID, postID)
}

// SharePost appends a share record with a fresh share token. Every call
// increments the share counter; shares are intentionally unbounded.
func (s *EngagementService) SharePost(ctx context.Context, user *models.User, postID uint, sharedTo string) (*models.PostShare, error) {
	if _, err := s.requirePostAccess(ctx, user, postID); err != nil {
		return nil, err
	}
	share := &models.PostShare{
		UserID:   user.ID,
		PostID:   postID,
		SharedTo: sharedTo,
		Token:    uuid.NewString(),
	}
	if err := s.engagementRepo.AddShare(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

// LikeItinerary likes an itinerary.
func (s *EngagementService) LikeItinerary(ctx context.Context, user *models.User, itineraryID uint) (models.EngagementStatus, error) {
	itinerary, err := s.requireItineraryAccess(ctx, user, itineraryID)
	if err != nil {
		return "", err
	}
	notif := notifyIfNotSelf(itinerary.UserID, user, models.NotificationLike, user.FullName+" liked your itinerary")
	if notif != nil {
		notif.ItineraryID = &itinerary.ID
	}
	return s.engagementRepo.Add(ctx, models.KindItineraryLike, user.ID, itineraryID, notif)
}

// UnlikeItinerary removes the user's like from an itinerary.
func (s *EngagementService) UnlikeItinerary(ctx context.Context, user *models.User, itineraryID uint) (models.EngagementStatus, error) {
	if _, err := s.requireItineraryAccess(ctx, user, itineraryID); err != nil {
		return "", err
	}
	return s.engagementRepo.Remove(ctx, models.KindItineraryLike, user.ID, itineraryID)
}

// SaveItinerary bookmarks an itinerary.
func (s *EngagementService) SaveItinerary(ctx context.Context, user *models.User, itineraryID uint) (models.EngagementStatus, error) {
	if _, err := s.requireItineraryAccess(ctx, user, itineraryID); err != nil {
		return "", err
	}
	return s.engagementRepo.Add(ctx, models.KindItinerarySave, user.ID, itineraryID, nil)
}

// UnsaveItinerary removes an itinerary bookmark.
func (s *EngagementService) UnsaveItinerary(ctx context.Context, user *models.User, itineraryID uint) (models.EngagementStatus, error) {
	if _, err := s.requireItineraryAccess(ctx, user, itineraryID); err != nil {
		return "", err
	}
	return s.engagementRepo.Remove(ctx, models.KindItinerarySave, user.ID, itineraryID)
}

// CommentOnPost creates a comment and notifies the post owner unless
// they commented on their own post.
func (s *EngagementService) CommentOnPost(ctx context.Context, user *models.User, postID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content cannot be empty")
	}
	post, err := s.requirePostAccess(ctx, user, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  user.ID,
		Content: content,
	}
	notif := notifyIfNotSelf(post.UserID, user, models.NotificationComment, user.FullName+" commented on your post")
	if notif != nil {
		notif.PostID = &post.ID
	}
	if err := s.engagementRepo.CreateComment(ctx, comment, notif); err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyToComment creates a reply and notifies the comment owner unless
// they replied to themselves. Threads stay one level deep.
func (s *EngagementService) ReplyToComment(ctx context.Context, user *models.User, commentID uint, content string) (*models.Reply, error) {
	if content == "" {
		return nil, models.NewValidationError("Reply content cannot be empty")
	}
	comment, err := s.engagementRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requirePostAccess(ctx, user, comment.PostID); err != nil {
		return nil, err
	}

	reply := &models.Reply{
		CommentID: commentID,
		UserID:    user.ID,
		Content:   content,
	}
	notif := notifyIfNotSelf(comment.UserID, user, models.NotificationComment, user.FullName+" replied to your comment")
	if notif != nil {
		notif.PostID = &comment.PostID
	}
	if err := s.engagementRepo.CreateReply(ctx, reply, notif); err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteComment removes the user's own comment together with its replies.
func (s *EngagementService) DeleteComment(ctx context.Context, user *models.User, commentID uint) error {
	return s.engagementRepo.DeleteComment(ctx, commentID, user.ID)
}

// LikeComment likes a comment and notifies its author.
func (s *EngagementService) LikeComment(ctx context.Context, user *models.User, commentID uint) (models.EngagementStatus, error) {
	comment, err := s.engagementRepo.GetComment(ctx, commentID)
	if err != nil {
		return "", err
	}
	if _, err := s.requirePostAccess(ctx, user, comment.PostID); err != nil {
		return "", err
	}
	notif := notifyIfNotSelf(comment.UserID, user, models.NotificationLike, user.FullName+" liked your comment")
	if notif != nil {
		notif.PostID = &comment.PostID
	}
	return s.engagementRepo.Add(ctx, models.KindCommentLike, user.ID, commentID, notif)
}

// UnlikeComment removes the user's like from a comment.
func (s *EngagementService) UnlikeComment(ctx context.Context, user *models.User, commentID uint) (models.EngagementStatus, error) {
	if _, err := s.engagementRepo.GetComment(ctx, commentID); err != nil {
		return "", err
	}
	return s.engagementRepo.Remove(ctx, models.KindCommentLike, user.ID, commentID)
}

// GetComments returns a page of comments on a post, newest first.
func (s *EngagementService) GetComments(ctx context.Context, viewer *models.User, postID uint, limit, offset int) (*models.Page[models.Comment], error) {
	if _, err := s.requirePostAccess(ctx, viewer, postID); err != nil {
		return nil, err
	}
	comments, total, err := s.engagementRepo.ListComments(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPage(comments, total, offset, limit), nil
}

// GetReplies returns a page of replies to a comment, oldest first.
func (s *EngagementService) GetReplies(ctx context.Context, viewer *models.User, commentID uint, limit, offset int) (*models.Page[models.Reply], error) {
	comment, err := s.engagementRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requirePostAccess(ctx, viewer, comment.PostID); err != nil {
		return nil, err
	}
	replies, total, err := s.engagementRepo.ListReplies(ctx, commentID, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPage(replies, total, offset, limit), nil
}
