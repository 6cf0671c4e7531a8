package service

import (
	"context"
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngagementService(eng *engagementRepoStub, posts *postRepoStub, itineraries *itineraryRepoStub, follows *followRepoStub) *EngagementService {
	return NewEngagementService(eng, posts, itineraries, follows)
}

func TestLikePostNotifiesOwner(t *testing.T) {
	var captured *models.Notification
	eng := noopEngagementRepo()
	eng.addFn = func(_ context.Context, kind models.EngagementKind, userID, itemID uint, notif *models.Notification) (models.EngagementStatus, error) {
		assert.Equal(t, models.KindPostLike, kind)
		captured = notif
		return models.StatusAdded, nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
	}
	svc := newEngagementService(eng, posts, noopItineraryRepo(), noopFollowRepo())

	actor := &models.User{ID: 1, FullName: "Ada"}
	status, err := svc.LikePost(context.Background(), actor, 10)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAdded, status)
	require.NotNil(t, captured)
	assert.Equal(t, uint(2), captured.UserID)
	assert.Equal(t, models.NotificationLike, captured.Type)
	require.NotNil(t, captured.PostID)
	assert.Equal(t, uint(10), *captured.PostID)
}

func TestLikeOwnPostProducesNoNotification(t *testing.T) {
	eng := noopEngagementRepo()
	eng.addFn = func(_ context.Context, _ models.EngagementKind, _, _ uint, notif *models.Notification) (models.EngagementStatus, error) {
		assert.Nil(t, notif)
		return models.StatusAdded, nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1, Visibility: models.VisibilityAll}, nil
	}
	svc := newEngagementService(eng, posts, noopItineraryRepo(), noopFollowRepo())

	_, err := svc.LikePost(context.Background(), &models.User{ID: 1}, 10)
	require.NoError(t, err)
}

func TestLikeHiddenPostIsNotFound(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Visibility: models.VisibilityFollowers, ApprovedByAdmin: true}, nil
	}
	follows := noopFollowRepo()
	follows.existsFn = func(context.Context, uint, uint) (bool, error) { return false, nil }
	svc := newEngagementService(noopEngagementRepo(), posts, noopItineraryRepo(), follows)

	_, err := svc.LikePost(context.Background(), &models.User{ID: 1}, 10)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestSavePostPassesNoNotification(t *testing.T) {
	eng := noopEngagementRepo()
	eng.addFn = func(_ context.Context, kind models.EngagementKind, _, _ uint, notif *models.Notification) (models.EngagementStatus, error) {
		assert.Equal(t, models.KindPostSave, kind)
		assert.Nil(t, notif)
		return models.StatusAdded, nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
	}
	svc := newEngagementService(eng, posts, noopItineraryRepo(), noopFollowRepo())

	_, err := svc.SavePost(context.Background(), &models.User{ID: 1}, 10)
	require.NoError(t, err)
}

func TestSharePostGeneratesToken(t *testing.T) {
	var captured *models.PostShare
	eng := noopEngagementRepo()
	eng.addShareFn = func(_ context.Context, share *models.PostShare) error {
		captured = share
		return nil
	}
	svc := newEngagementService(eng, noopPostRepo(), noopItineraryRepo(), noopFollowRepo())

	share, err := svc.SharePost(context.Background(), &models.User{ID: 1}, 10, "instagram")
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.NotEmpty(t, share.Token)
	assert.Equal(t, "instagram", share.SharedTo)

	// Tokens are unique per share.
	again, err := svc.SharePost(context.Background(), &models.User{ID: 1}, 10, "instagram")
	require.NoError(t, err)
	assert.NotEqual(t, share.Token, again.Token)
}

func TestCommentNotifiesPostOwnerUnlessSelf(t *testing.T) {
	var captured *models.Notification
	eng := noopEngagementRepo()
	eng.createCommentFn = func(_ context.Context, comment *models.Comment, notif *models.Notification) error {
		captured = notif
		return nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
	}
	svc := newEngagementService(eng, posts, noopItineraryRepo(), noopFollowRepo())

	_, err := svc.CommentOnPost(context.Background(), &models.User{ID: 1, FullName: "Ada"}, 10, "great trip")
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, models.NotificationComment, captured.Type)
	assert.Equal(t, uint(2), captured.UserID)

	captured = nil
	_, err = svc.CommentOnPost(context.Background(), &models.User{ID: 2}, 10, "my own post")
	require.NoError(t, err)
	assert.Nil(t, captured)
}

func TestEmptyCommentRejected(t *testing.T) {
	svc := newEngagementService(noopEngagementRepo(), noopPostRepo(), noopItineraryRepo(), noopFollowRepo())

	_, err := svc.CommentOnPost(context.Background(), &models.User{ID: 1}, 10, "")
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestReplyNotifiesCommentOwner(t *testing.T) {
	var captured *models.Notification
	eng := noopEngagementRepo()
	eng.getCommentFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 10, UserID: 5}, nil
	}
	eng.createReplyFn = func(_ context.Context, reply *models.Reply, notif *models.Notification) error {
		captured = notif
		return nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
	}
	svc := newEngagementService(eng, posts, noopItineraryRepo(), noopFollowRepo())

	_, err := svc.ReplyToComment(context.Background(), &models.User{ID: 1, FullName: "Ada"}, 77, "same!")
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, uint(5), captured.UserID)

	// Replying to your own comment stays silent.
	captured = nil
	_, err = svc.ReplyToComment(context.Background(), &models.User{ID: 5}, 77, "following up")
	require.NoError(t, err)
	assert.Nil(t, captured)
}

func TestLikeItineraryNotifiesOwner(t *testing.T) {
	var captured *models.Notification
	eng := noopEngagementRepo()
	eng.addFn = func(_ context.Context, kind models.EngagementKind, _, _ uint, notif *models.Notification) (models.EngagementStatus, error) {
		assert.Equal(t, models.KindItineraryLike, kind)
		captured = notif
		return models.StatusAdded, nil
	}
	itineraries := noopItineraryRepo()
	itineraries.getByIDFn = func(_ context.Context, id uint) (*models.Itinerary, error) {
		return &models.Itinerary{ID: id, UserID: 3, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
	}
	svc := newEngagementService(eng, noopPostRepo(), itineraries, noopFollowRepo())

	_, err := svc.LikeItinerary(context.Background(), &models.User{ID: 1, FullName: "Ada"}, 20)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, uint(3), captured.UserID)
	require.NotNil(t, captured.ItineraryID)
	assert.Equal(t, uint(20), *captured.ItineraryID)
}
