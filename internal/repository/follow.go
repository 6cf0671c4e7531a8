package repository

import (
	"context"
	"errors"

	"wayfare/internal/cache"
	"wayfare/internal/middleware"
	"wayfare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	Create(ctx context.Context, edge *models.FollowEdge, notif *models.Notification) error
	Delete(ctx context.Context, followerID, followeeID uint) error
	Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	Suggested(ctx context.Context, userID uint, limit int) ([]models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the follow edge, bumps both denormalized counters and
// persists the follow notification in a single transaction. A duplicate
// edge surfaces as AlreadyExists and leaves every counter untouched.
func (r *followRepository) Create(ctx context.Context, edge *models.FollowEdge, notif *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Statistics{}).
			Where("user_id = ?", edge.FollowerID).
			Update("total_following", gorm.Expr("total_following + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Statistics{}).
			Where("user_id = ?", edge.FolloweeID).
			Update("total_followers", gorm.Expr("total_followers + 1")).Error; err != nil {
			return err
		}
		if notif != nil {
			if err := tx.Create(notif).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("Follow", edge.FolloweeID)
		}
		return models.NewInternalError(err)
	}
	if notif != nil {
		middleware.NotificationsWritten.WithLabelValues(string(notif.Type)).Inc()
	}
	cache.InvalidateStatistics(ctx, edge.FollowerID)
	cache.InvalidateStatistics(ctx, edge.FolloweeID)
	cache.InvalidateSuggested(ctx, edge.FollowerID)
	return nil
}

// Delete removes the follow edge and decrements both counters. The
// decrements only run when the delete actually removed a row, so
// unfollowing a user you never followed cannot drive a counter negative.
func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&models.FollowEdge{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.Statistics{}).
			Where("user_id = ? AND total_following > 0", followerID).
			Update("total_following", gorm.Expr("total_following - 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Statistics{}).
			Where("user_id = ? AND total_followers > 0", followeeID).
			Update("total_followers", gorm.Expr("total_followers - 1")).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewInvalidOperationError("You are not following this user")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateStatistics(ctx, followerID)
	cache.InvalidateStatistics(ctx, followeeID)
	cache.InvalidateSuggested(ctx, followerID)
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("followee_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var edges []models.FollowEdge
	if err := r.db.WithContext(ctx).
		Where("followee_id = ?", userID).
		Preload("Follower.Profile").
		Preload("Follower.Statistics").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return edges, total, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowEdge, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("follower_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var edges []models.FollowEdge
	if err := r.db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Preload("Followee.Profile").
		Preload("Followee.Statistics").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return edges, total, nil
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// Suggested returns accounts the user might follow: not themselves, not
// banned, opted into suggestions, and not already followed. Popular
// accounts come first. The list is cached per user and invalidated when
// the user follows or unfollows someone; a cached list fetched with a
// larger limit is trimmed on the way out.
func (r *followRepository) Suggested(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.SuggestedKey(userID), &users, cache.SuggestedTTL, func() error {
		return r.suggested(ctx, userID, limit, &users)
	})
	if err != nil {
		return nil, err
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *followRepository) suggested(ctx context.Context, userID uint, limit int, users *[]models.User) error {
	if err := r.db.WithContext(ctx).
		Joins("JOIN account_settings ON account_settings.user_id = users.id").
		Joins("JOIN statistics ON statistics.user_id = users.id").
		Where("users.id != ?", userID).
		Where("users.banned = ?", false).
		Where("account_settings.suggest_account = ?", true).
		Where("users.id NOT IN (?)", r.db.
			Model(&models.FollowEdge{}).
			Select("followee_id").
			Where("follower_id = ?", userID)).
		Preload("Profile").
		Preload("Statistics").
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: "statistics", Name: "total_followers"}, Desc: true},
			{Column: clause.Column{Table: "users", Name: "id"}},
		}}).
		Limit(limit).
		Find(users).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
