package repository

import (
	"context"
	"errors"

	"wayfare/internal/cache"
	"wayfare/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint, userID uint) error
	SetApproved(ctx context.Context, id uint, approved bool) error
	Feed(ctx context.Context, viewerID uint, followingIDs []uint, sort string, limit, offset int) ([]*models.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Post, int64, error)
	ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.Post, int64, error)
	Counts(ctx context.Context) (total int64, pending int64, err error)
	IncViewCount(ctx context.Context, id uint) error
	MarkEngagement(ctx context.Context, viewerID uint, posts []*models.Post) error
}

// Feed sort modes.
const (
	SortRecent = "recent"
	SortTop    = "top"
)

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and bumps the author's total_posts counter in
// the same transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&models.Statistics{}).
			Where("user_id = ?", post.UserID).
			Update("total_posts", gorm.Expr("total_posts + 1")).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User.Profile").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete soft-deletes the post and decrements the author's total_posts
// counter, but only when a row was actually removed.
func (r *postRepository) Delete(ctx context.Context, id uint, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Statistics{}).
			Where("user_id = ? AND total_posts > 0", userID).
			Update("total_posts", gorm.Expr("total_posts - 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Update("approved_by_admin", approved)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// feedScope restricts a query to what the viewer may see: their own posts
// in any state, and approved public posts plus approved followers-only
// posts from authors they follow. Posts by banned authors never appear.
func (r *postRepository) feedScope(db *gorm.DB, viewerID uint, followingIDs []uint) *gorm.DB {
	q := db.
		Joins("JOIN users ON users.id = posts.user_id").
		Where("users.banned = ?", false)
	if len(followingIDs) > 0 {
		return q.Where(
			"posts.user_id = ? OR (posts.approved_by_admin = ? AND (posts.visibility = ? OR (posts.visibility = ? AND posts.user_id IN ?)))",
			viewerID, true, models.VisibilityAll, models.VisibilityFollowers, followingIDs,
		)
	}
	return q.Where(
		"posts.user_id = ? OR (posts.approved_by_admin = ? AND posts.visibility = ?)",
		viewerID, true, models.VisibilityAll,
	)
}

func (r *postRepository) Feed(ctx context.Context, viewerID uint, followingIDs []uint, sort string, limit, offset int) ([]*models.Post, int64, error) {
	base := r.feedScope(r.db.WithContext(ctx).Model(&models.Post{}), viewerID, followingIDs)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	q := base.Session(&gorm.Session{}).Preload("User.Profile")
	switch sort {
	case SortTop:
		q = q.Order("posts.like_count DESC, posts.view_count DESC, posts.created_at DESC")
	default:
		q = q.Order("posts.created_at DESC")
	}

	var posts []*models.Post
	if err := q.Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Post{}).Where("user_id = ?", userID)
	if !includeFollowersOnly {
		base = base.Where("visibility = ?", models.VisibilityAll)
	}
	if !includePending {
		base = base.Where("approved_by_admin = ?", true)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostSave{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Joins("JOIN post_saves ON post_saves.post_id = posts.id").
		Where("post_saves.user_id = ?", userID).
		Preload("User.Profile").
		Order("post_saves.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

// ListPending lists posts awaiting moderation, oldest first.
func (r *postRepository) ListPending(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("approved_by_admin = ?", false)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []*models.Post
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (r *postRepository) Counts(ctx context.Context) (int64, int64, error) {
	var total, pending int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("approved_by_admin = ?", false).
		Count(&pending).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return total, pending, nil
}

func (r *postRepository) IncViewCount(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// MarkEngagement fills the computed Liked and Saved flags on a page of
// posts with two IN queries instead of one query per post.
func (r *postRepository) MarkEngagement(ctx context.Context, viewerID uint, posts []*models.Post) error {
	if viewerID == 0 || len(posts) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var liked []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("user_id = ? AND post_id IN ?", viewerID, ids).
		Pluck("post_id", &liked).Error; err != nil {
		return models.NewInternalError(err)
	}
	var saved []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PostSave{}).
		Where("user_id = ? AND post_id IN ?", viewerID, ids).
		Pluck("post_id", &saved).Error; err != nil {
		return models.NewInternalError(err)
	}

	likedSet := make(map[uint]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}
	savedSet := make(map[uint]struct{}, len(saved))
	for _, id := range saved {
		savedSet[id] = struct{}{}
	}
	for _, p := range posts {
		_, p.Liked = likedSet[p.ID]
		_, p.Saved = savedSet[p.ID]
	}
	return nil
}
