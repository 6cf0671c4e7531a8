package service

import (
	"context"

	"wayfare/internal/models"
)

type followRepoStub struct {
	createFn       func(context.Context, *models.FollowEdge, *models.Notification) error
	deleteFn       func(context.Context, uint, uint) error
	existsFn       func(context.Context, uint, uint) (bool, error)
	listFollowers  func(context.Context, uint, int, int) ([]models.FollowEdge, int64, error)
	listFollowing  func(context.Context, uint, int, int) ([]models.FollowEdge, int64, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
	suggestedFn    func(context.Context, uint, int) ([]models.User, error)
}

func (s *followRepoStub) Create(ctx context.Context, edge *models.FollowEdge, notif *models.Notification) error {
	return s.createFn(ctx, edge, notif)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error) {
	return s.listFollowers(ctx, userID, limit, offset)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error) {
	return s.listFollowing(ctx, userID, limit, offset)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) Suggested(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.suggestedFn(ctx, userID, limit)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn: func(context.Context, *models.FollowEdge, *models.Notification) error { return nil },
		deleteFn: func(context.Context, uint, uint) error { return nil },
		existsFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		listFollowers: func(context.Context, uint, int, int) ([]models.FollowEdge, int64, error) {
			return nil, 0, nil
		},
		listFollowing: func(context.Context, uint, int, int) ([]models.FollowEdge, int64, error) {
			return nil, 0, nil
		},
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		suggestedFn:    func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type userRepoStub struct {
	createWithDefaultsFn func(context.Context, *models.User) error
	getByIDFn            func(context.Context, uint) (*models.User, error)
	getByEmailFn         func(context.Context, string) (*models.User, error)
	getByUsernameFn      func(context.Context, string) (*models.User, error)
	updateFn             func(context.Context, *models.User) error
	updateProfileFn      func(context.Context, *models.Profile) error
	getSettingsFn        func(context.Context, uint) (*models.AccountSettings, *models.NotificationSettings, *models.PrivacySettings, error)
	updateAccountFn      func(context.Context, *models.AccountSettings) error
	updateNotificationFn func(context.Context, *models.NotificationSettings) error
	updatePrivacyFn      func(context.Context, *models.PrivacySettings) error
	setBannedFn          func(context.Context, uint, bool) error
	setActiveFn          func(context.Context, uint, bool) error
	countBannedFn        func(context.Context) (int64, error)
	listFn               func(context.Context, int, int) ([]models.User, int64, error)
	searchFn             func(context.Context, string, int, int) ([]models.User, int64, error)
	deleteFn             func(context.Context, uint) error
}

func (s *userRepoStub) CreateWithDefaults(ctx context.Context, user *models.User) error {
	return s.createWithDefaultsFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	return s.updateProfileFn(ctx, profile)
}
func (s *userRepoStub) GetSettings(ctx context.Context, userID uint) (*models.AccountSettings, *models.NotificationSettings, *models.PrivacySettings, error) {
	return s.getSettingsFn(ctx, userID)
}
func (s *userRepoStub) UpdateAccountSettings(ctx context.Context, settings *models.AccountSettings) error {
	return s.updateAccountFn(ctx, settings)
}
func (s *userRepoStub) UpdateNotificationSettings(ctx context.Context, settings *models.NotificationSettings) error {
	return s.updateNotificationFn(ctx, settings)
}
func (s *userRepoStub) UpdatePrivacySettings(ctx context.Context, settings *models.PrivacySettings) error {
	return s.updatePrivacyFn(ctx, settings)
}
func (s *userRepoStub) SetBanned(ctx context.Context, id uint, banned bool) error {
	return s.setBannedFn(ctx, id, banned)
}
func (s *userRepoStub) SetActive(ctx context.Context, id uint, active bool) error {
	return s.setActiveFn(ctx, id, active)
}
func (s *userRepoStub) CountBanned(ctx context.Context) (int64, error) {
	return s.countBannedFn(ctx)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]models.User, int64, error) {
	return s.searchFn(ctx, query, limit, offset)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createWithDefaultsFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Profile: &models.Profile{}}, nil
		},
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		updateProfileFn: func(context.Context, *models.Profile) error { return nil },
		getSettingsFn: func(context.Context, uint) (*models.AccountSettings, *models.NotificationSettings, *models.PrivacySettings, error) {
			return &models.AccountSettings{}, &models.NotificationSettings{}, &models.PrivacySettings{}, nil
		},
		updateAccountFn:      func(context.Context, *models.AccountSettings) error { return nil },
		updateNotificationFn: func(context.Context, *models.NotificationSettings) error { return nil },
		updatePrivacyFn:      func(context.Context, *models.PrivacySettings) error { return nil },
		setBannedFn:          func(context.Context, uint, bool) error { return nil },
		setActiveFn:          func(context.Context, uint, bool) error { return nil },
		countBannedFn:        func(context.Context) (int64, error) { return 0, nil },
		listFn:               func(context.Context, int, int) ([]models.User, int64, error) { return nil, 0, nil },
		searchFn:             func(context.Context, string, int, int) ([]models.User, int64, error) { return nil, 0, nil },
		deleteFn:             func(context.Context, uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint, uint) error
	setApprovedFn    func(context.Context, uint, bool) error
	feedFn           func(context.Context, uint, []uint, string, int, int) ([]*models.Post, int64, error)
	listByUserFn     func(context.Context, uint, bool, bool, int, int) ([]*models.Post, int64, error)
	listSavedFn      func(context.Context, uint, int, int) ([]*models.Post, int64, error)
	listPendingFn    func(context.Context, int, int) ([]*models.Post, int64, error)
	countsFn         func(context.Context) (int64, int64, error)
	incViewCountFn   func(context.Context, uint) error
	markEngagementFn func(context.Context, uint, []*models.Post) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}
func (s *postRepoStub) SetApproved(ctx context.Context, id uint, approved bool) error {
	return s.setApprovedFn(ctx, id, approved)
}
func (s *postRepoStub) Feed(ctx context.Context, viewerID uint, followingIDs []uint, sort string, limit, offset int) ([]*models.Post, int64, error) {
	return s.feedFn(ctx, viewerID, followingIDs, sort, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Post, int64, error) {
	return s.listByUserFn(ctx, userID, includeFollowersOnly, includePending, limit, offset)
}
func (s *postRepoStub) ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	return s.listSavedFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) ListPending(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	return s.listPendingFn(ctx, limit, offset)
}
func (s *postRepoStub) Counts(ctx context.Context) (int64, int64, error) {
	return s.countsFn(ctx)
}
func (s *postRepoStub) IncViewCount(ctx context.Context, id uint) error {
	return s.incViewCountFn(ctx, id)
}
func (s *postRepoStub) MarkEngagement(ctx context.Context, viewerID uint, posts []*models.Post) error {
	return s.markEngagementFn(ctx, viewerID, posts)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
		},
		updateFn:      func(context.Context, *models.Post) error { return nil },
		deleteFn:      func(context.Context, uint, uint) error { return nil },
		setApprovedFn: func(context.Context, uint, bool) error { return nil },
		feedFn: func(context.Context, uint, []uint, string, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		listByUserFn: func(context.Context, uint, bool, bool, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		listSavedFn: func(context.Context, uint, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		listPendingFn: func(context.Context, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		countsFn:         func(context.Context) (int64, int64, error) { return 0, 0, nil },
		incViewCountFn:   func(context.Context, uint) error { return nil },
		markEngagementFn: func(context.Context, uint, []*models.Post) error { return nil },
	}
}

type itineraryRepoStub struct {
	createFn             func(context.Context, *models.Itinerary) error
	getByIDFn            func(context.Context, uint) (*models.Itinerary, error)
	updateFn             func(context.Context, *models.Itinerary) error
	deleteFn             func(context.Context, uint, uint) error
	deleteAnyFn          func(context.Context, uint) error
	setApprovedFn        func(context.Context, uint, bool) error
	listByUserFn         func(context.Context, uint, bool, bool, int, int) ([]*models.Itinerary, int64, error)
	listSavedFn          func(context.Context, uint, int, int) ([]*models.Itinerary, int64, error)
	feedFn               func(context.Context, uint, []uint, int, int) ([]*models.Itinerary, int64, error)
	topFn                func(context.Context, int, int) ([]*models.Itinerary, int64, error)
	listPendingFn        func(context.Context, int, int) ([]*models.Itinerary, int64, error)
	countsFn             func(context.Context) (int64, int64, error)
	destinationsByUserFn func(context.Context, uint) ([]string, error)
	countByUserFn        func(context.Context, uint) (int64, error)
	markEngagementFn     func(context.Context, uint, []*models.Itinerary) error
}

func (s *itineraryRepoStub) Create(ctx context.Context, itinerary *models.Itinerary) error {
	return s.createFn(ctx, itinerary)
}
func (s *itineraryRepoStub) GetByID(ctx context.Context, id uint) (*models.Itinerary, error) {
	return s.getByIDFn(ctx, id)
}
func (s *itineraryRepoStub) Update(ctx context.Context, itinerary *models.Itinerary) error {
	return s.updateFn(ctx, itinerary)
}
func (s *itineraryRepoStub) Delete(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}
func (s *itineraryRepoStub) DeleteAny(ctx context.Context, id uint) error {
	return s.deleteAnyFn(ctx, id)
}
func (s *itineraryRepoStub) SetApproved(ctx context.Context, id uint, approved bool) error {
	return s.setApprovedFn(ctx, id, approved)
}
func (s *itineraryRepoStub) ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Itinerary, int64, error) {
	return s.listByUserFn(ctx, userID, includeFollowersOnly, includePending, limit, offset)
}
func (s *itineraryRepoStub) ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Itinerary, int64, error) {
	return s.listSavedFn(ctx, userID, limit, offset)
}
func (s *itineraryRepoStub) Feed(ctx context.Context, viewerID uint, followingIDs []uint, limit, offset int) ([]*models.Itinerary, int64, error) {
	return s.feedFn(ctx, viewerID, followingIDs, limit, offset)
}
func (s *itineraryRepoStub) Top(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error) {
	return s.topFn(ctx, limit, offset)
}
func (s *itineraryRepoStub) ListPending(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error) {
	return s.listPendingFn(ctx, limit, offset)
}
func (s *itineraryRepoStub) Counts(ctx context.Context) (int64, int64, error) {
	return s.countsFn(ctx)
}
func (s *itineraryRepoStub) DestinationsByUser(ctx context.Context, userID uint) ([]string, error) {
	return s.destinationsByUserFn(ctx, userID)
}
func (s *itineraryRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *itineraryRepoStub) MarkEngagement(ctx context.Context, viewerID uint, itineraries []*models.Itinerary) error {
	return s.markEngagementFn(ctx, viewerID, itineraries)
}

func noopItineraryRepo() *itineraryRepoStub {
	return &itineraryRepoStub{
		createFn: func(context.Context, *models.Itinerary) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Itinerary, error) {
			return &models.Itinerary{ID: id, Visibility: models.VisibilityAll, ApprovedByAdmin: true}, nil
		},
		updateFn:      func(context.Context, *models.Itinerary) error { return nil },
		deleteFn:      func(context.Context, uint, uint) error { return nil },
		deleteAnyFn:   func(context.Context, uint) error { return nil },
		setApprovedFn: func(context.Context, uint, bool) error { return nil },
		listByUserFn: func(context.Context, uint, bool, bool, int, int) ([]*models.Itinerary, int64, error) {
			return nil, 0, nil
		},
		listSavedFn: func(context.Context, uint, int, int) ([]*models.Itinerary, int64, error) {
			return nil, 0, nil
		},
		feedFn: func(context.Context, uint, []uint, int, int) ([]*models.Itinerary, int64, error) {
			return nil, 0, nil
		},
		topFn: func(context.Context, int, int) ([]*models.Itinerary, int64, error) {
			return nil, 0, nil
		},
		listPendingFn: func(context.Context, int, int) ([]*models.Itinerary, int64, error) {
			return nil, 0, nil
		},
		countsFn:             func(context.Context) (int64, int64, error) { return 0, 0, nil },
		destinationsByUserFn: func(context.Context, uint) ([]string, error) { return nil, nil },
		countByUserFn:        func(context.Context, uint) (int64, error) { return 0, nil },
		markEngagementFn:     func(context.Context, uint, []*models.Itinerary) error { return nil },
	}
}

type engagementRepoStub struct {
	addFn           func(context.Context, models.EngagementKind, uint, uint, *models.Notification) (models.EngagementStatus, error)
	removeFn        func(context.Context, models.EngagementKind, uint, uint) (models.EngagementStatus, error)
	addShareFn      func(context.Context, *models.PostShare) error
	createCommentFn func(context.Context, *models.Comment, *models.Notification) error
	deleteCommentFn func(context.Context, uint, uint) error
	getCommentFn    func(context.Context, uint) (*models.Comment, error)
	listCommentsFn  func(context.Context, uint, int, int) ([]models.Comment, int64, error)
	createReplyFn   func(context.Context, *models.Reply, *models.Notification) error
	listRepliesFn   func(context.Context, uint, int, int) ([]models.Reply, int64, error)
}

func (s *engagementRepoStub) Add(ctx context.Context, kind models.EngagementKind, userID, itemID uint, notif *models.Notification) (models.EngagementStatus, error) {
	return s.addFn(ctx, kind, userID, itemID, notif)
}
func (s *engagementRepoStub) Remove(ctx context.Context, kind models.EngagementKind, userID, itemID uint) (models.EngagementStatus, error) {
	return s.removeFn(ctx, kind, userID, itemID)
}
func (s *engagementRepoStub) AddShare(ctx context.Context, share *models.PostShare) error {
	return s.addShareFn(ctx, share)
}
func (s *engagementRepoStub) CreateComment(ctx context.Context, comment *models.Comment, notif *models.Notification) error {
	return s.createCommentFn(ctx, comment, notif)
}
func (s *engagementRepoStub) DeleteComment(ctx context.Context, commentID, userID uint) error {
	return s.deleteCommentFn(ctx, commentID, userID)
}
func (s *engagementRepoStub) GetComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, commentID)
}
func (s *engagementRepoStub) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error) {
	return s.listCommentsFn(ctx, postID, limit, offset)
}
func (s *engagementRepoStub) CreateReply(ctx context.Context, reply *models.Reply, notif *models.Notification) error {
	return s.createReplyFn(ctx, reply, notif)
}
func (s *engagementRepoStub) ListReplies(ctx context.Context, commentID uint, limit, offset int) ([]models.Reply, int64, error) {
	return s.listRepliesFn(ctx, commentID, limit, offset)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		addFn: func(context.Context, models.EngagementKind, uint, uint, *models.Notification) (models.EngagementStatus, error) {
			return models.StatusAdded, nil
		},
		removeFn: func(context.Context, models.EngagementKind, uint, uint) (models.EngagementStatus, error) {
			return models.StatusRemoved, nil
		},
		addShareFn:      func(context.Context, *models.PostShare) error { return nil },
		createCommentFn: func(context.Context, *models.Comment, *models.Notification) error { return nil },
		deleteCommentFn: func(context.Context, uint, uint) error { return nil },
		getCommentFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listCommentsFn: func(context.Context, uint, int, int) ([]models.Comment, int64, error) {
			return nil, 0, nil
		},
		createReplyFn: func(context.Context, *models.Reply, *models.Notification) error { return nil },
		listRepliesFn: func(context.Context, uint, int, int) ([]models.Reply, int64, error) {
			return nil, 0, nil
		},
	}
}

type statsRepoStub struct {
	getByUserIDFn  func(context.Context, uint) (*models.Statistics, error)
	upsertTravelFn func(context.Context, uint, int, int, int) error
}

func (s *statsRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Statistics, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *statsRepoStub) UpsertTravel(ctx context.Context, userID uint, totalTrips, countriesVisited, continentsVisited int) error {
	return s.upsertTravelFn(ctx, userID, totalTrips, countriesVisited, continentsVisited)
}

func noopStatsRepo() *statsRepoStub {
	return &statsRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Statistics, error) {
			return &models.Statistics{UserID: userID}, nil
		},
		upsertTravelFn: func(context.Context, uint, int, int, int) error { return nil },
	}
}

type notificationRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	listByUserFn  func(context.Context, uint, bool, int, int) ([]models.Notification, int64, error)
	countUnreadFn func(context.Context, uint) (int64, error)
	markReadFn    func(context.Context, uint, uint) error
	markAllReadFn func(context.Context, uint) error
	deleteFn      func(context.Context, uint, uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, notif *models.Notification) error {
	return s.createFn(ctx, notif)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	return s.listByUserFn(ctx, userID, unreadOnly, limit, offset)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id, userID uint) error {
	return s.markReadFn(ctx, id, userID)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}
