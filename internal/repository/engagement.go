package repository

import (
	"context"
	"errors"
	"fmt"

	"wayfare/internal/cache"
	"wayfare/internal/middleware"
	"wayfare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository owns like/save/share edges, comments and replies,
// and keeps the denormalized counters on their targets in step.
type EngagementRepository interface {
	Add(ctx context.Context, kind models.EngagementKind, userID, itemID uint, notif *models.Notification) (models.EngagementStatus, error)
	Remove(ctx context.Context, kind models.EngagementKind, userID, itemID uint) (models.EngagementStatus, error)
	AddShare(ctx context.Context, share *models.PostShare) error
	CreateComment(ctx context.Context, comment *models.Comment, notif *models.Notification) error
	DeleteComment(ctx context.Context, commentID, userID uint) error
	GetComment(ctx context.Context, commentID uint) (*models.Comment, error)
	ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error)
	CreateReply(ctx context.Context, reply *models.Reply, notif *models.Notification) error
	ListReplies(ctx context.Context, commentID uint, limit, offset int) ([]models.Reply, int64, error)
}

// engagementKindSpec binds a kind to its edge constructor, its edge filter,
// the counter column it maintains and the cache entry it dirties.
type engagementKindSpec struct {
	newEdge    func(userID, itemID uint) any
	edgeModel  func() any
	edgeWhere  string
	target     func() any
	column     string
	invalidate func(ctx context.Context, itemID uint)
}

var engagementKinds = map[models.EngagementKind]engagementKindSpec{
	models.KindPostLike: {
		newEdge:    func(u, i uint) any { return &models.PostLike{UserID: u, PostID: i} },
		edgeModel:  func() any { return &models.PostLike{} },
		edgeWhere:  "user_id = ? AND post_id = ?",
		target:     func() any { return &models.Post{} },
		column:     "like_count",
		invalidate: cache.InvalidatePost,
	},
	models.KindPostSave: {
		newEdge:    func(u, i uint) any { return &models.PostSave{UserID: u, PostID: i} },
		edgeModel:  func() any { return &models.PostSave{} },
		edgeWhere:  "user_id = ? AND post_id = ?",
		target:     func() any { return &models.Post{} },
		column:     "save_count",
		invalidate: cache.InvalidatePost,
	},
	models.KindItineraryLike: {
		newEdge:    func(u, i uint) any { return &models.ItineraryLike{UserID: u, ItineraryID: i} },
		edgeModel:  func() any { return &models.ItineraryLike{} },
		edgeWhere:  "user_id = ? AND itinerary_id = ?",
		target:     func() any { return &models.Itinerary{} },
		column:     "like_count",
		invalidate: cache.InvalidateItinerary,
	},
	models.KindItinerarySave: {
		newEdge:    func(u, i uint) any { return &models.ItinerarySave{UserID: u, ItineraryID: i} },
		edgeModel:  func() any { return &models.ItinerarySave{} },
		edgeWhere:  "user_id = ? AND itinerary_id = ?",
		target:     func() any { return &models.Itinerary{} },
		column:     "save_count",
		invalidate: cache.InvalidateItinerary,
	},
	models.KindCommentLike: {
		newEdge:   func(u, i uint) any { return &models.CommentLike{UserID: u, CommentID: i} },
		edgeModel: func() any { return &models.CommentLike{} },
		edgeWhere: "user_id = ? AND comment_id = ?",
		target:    func() any { return &models.Comment{} },
		column:    "like_count",
	},
}

// engagementRepository implements EngagementRepository
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Add inserts the edge and increments the target's counter. The insert
// uses ON CONFLICT DO NOTHING, so two racing adds both succeed at the SQL
// level but only the one that created the row increments the counter and
// writes the notification. A redundant add returns StatusAlready.
func (r *engagementRepository) Add(ctx context.Context, kind models.EngagementKind, userID, itemID uint, notif *models.Notification) (models.EngagementStatus, error) {
	spec, ok := engagementKinds[kind]
	if !ok {
		return "", models.NewInternalError(fmt.Errorf("unknown engagement kind %q", kind))
	}

	status := models.StatusAlready
	err := withRetry(ctx, func() error {
		status = models.StatusAlready
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(spec.newEdge(userID, itemID))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			status = models.StatusAdded
			if err := tx.Model(spec.target()).
				Where("id = ?", itemID).
				Update(spec.column, gorm.Expr(spec.column+" + 1")).Error; err != nil {
				return err
			}
			if notif != nil {
				return tx.Create(notif).Error
			}
			return nil
		})
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	middleware.EngagementOps.WithLabelValues(string(kind), string(status)).Inc()
	if status == models.StatusAdded && notif != nil {
		middleware.NotificationsWritten.WithLabelValues(string(notif.Type)).Inc()
	}
	if status.Changed() && spec.invalidate != nil {
		spec.invalidate(ctx, itemID)
	}
	return status, nil
}

// Remove deletes the edge and decrements the counter only when a row was
// actually deleted, so the counter can never go below zero through this
// path. A redundant remove returns StatusAbsent.
func (r *engagementRepository) Remove(ctx context.Context, kind models.EngagementKind, userID, itemID uint) (models.EngagementStatus, error) {
	spec, ok := engagementKinds[kind]
	if !ok {
		return "", models.NewInternalError(fmt.Errorf("unknown engagement kind %q", kind))
	}

	status := models.StatusAbsent
	err := withRetry(ctx, func() error {
		status = models.StatusAbsent
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Where(spec.edgeWhere, userID, itemID).Delete(spec.edgeModel())
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			status = models.StatusRemoved
			return tx.Model(spec.target()).
				Where("id = ? AND "+spec.column+" > 0", itemID).
				Update(spec.column, gorm.Expr(spec.column+" - 1")).Error
		})
	})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	middleware.EngagementOps.WithLabelValues(string(kind), string(status)).Inc()
	if status.Changed() && spec.invalidate != nil {
		spec.invalidate(ctx, itemID)
	}
	return status, nil
}

// AddShare appends a share record and increments the share counter.
// Shares are not deduplicated; every call adds one.
func (r *engagementRepository) AddShare(ctx context.Context, share *models.PostShare) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(share).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", share.PostID).
			Update("share_count", gorm.Expr("share_count + 1")).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, share.PostID)
	return nil
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *models.Comment, notif *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *engagementRepository) DeleteComment(ctx context.Context, commentID, userID uint) error {
	var postID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}
		postID = comment.PostID
		res := tx.Where("id = ? AND user_id = ?", commentID, userID).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND comment_count > 0", comment.PostID).
			Update("comment_count", gorm.Expr("comment_count - 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", commentID)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *engagementRepository) GetComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *engagementRepository) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("User.Profile").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return comments, total, nil
}

func (r *engagementRepository) CreateReply(ctx context.Context, reply *models.Reply, notif *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		if notif != nil {
			return tx.Create(notif).Error
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListReplies returns replies oldest first; threads read top down.
func (r *engagementRepository) ListReplies(ctx context.Context, commentID uint, limit, offset int) ([]models.Reply, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reply{}).
		Where("comment_id = ?", commentID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var replies []models.Reply
	if err := r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Preload("User.Profile").
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&replies).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return replies, total, nil
}
