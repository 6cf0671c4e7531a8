package repository

import (
	"context"
	"errors"

	"wayfare/internal/cache"
	"wayfare/internal/models"

	"gorm.io/gorm"
)

// ItineraryRepository defines the interface for itinerary data operations
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *models.Itinerary) error
	GetByID(ctx context.Context, id uint) (*models.Itinerary, error)
	Update(ctx context.Context, itinerary *models.Itinerary) error
	Delete(ctx context.Context, id uint, userID uint) error
	DeleteAny(ctx context.Context, id uint) error
	SetApproved(ctx context.Context, id uint, approved bool) error
	ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Itinerary, int64, error)
	ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Itinerary, int64, error)
	Feed(ctx context.Context, viewerID uint, followingIDs []uint, limit, offset int) ([]*models.Itinerary, int64, error)
	Top(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error)
	Counts(ctx context.Context) (total int64, pending int64, err error)
	DestinationsByUser(ctx context.Context, userID uint) ([]string, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	MarkEngagement(ctx context.Context, viewerID uint, itineraries []*models.Itinerary) error
}

// itineraryRepository implements ItineraryRepository
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository creates a new itinerary repository
func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *models.Itinerary) error {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uint) (*models.Itinerary, error) {
	var itinerary models.Itinerary
	err := cache.Aside(ctx, cache.ItineraryKey(id), &itinerary, cache.ItineraryTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User.Profile").
			First(&itinerary, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Itinerary", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *models.Itinerary) error {
	if err := r.db.WithContext(ctx).Save(itinerary).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItinerary(ctx, itinerary.ID)
	return nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id uint, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Itinerary{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Itinerary", id)
	}
	cache.InvalidateItinerary(ctx, id)
	return nil
}

// DeleteAny removes an itinerary regardless of owner. Moderation only.
func (r *itineraryRepository) DeleteAny(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Itinerary{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Itinerary", id)
	}
	cache.InvalidateItinerary(ctx, id)
	return nil
}

func (r *itineraryRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("id = ?", id).
		Update("approved_by_admin", approved)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Itinerary", id)
	}
	cache.InvalidateItinerary(ctx, id)
	return nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uint, includeFollowersOnly, includePending bool, limit, offset int) ([]*models.Itinerary, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Itinerary{}).Where("user_id = ?", userID)
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

	var itineraries []*models.Itinerary
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return itineraries, total, nil
}

func (r *itineraryRepository) ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Itinerary, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ItinerarySave{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var itineraries []*models.Itinerary
	if err := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Joins("JOIN itinerary_saves ON itinerary_saves.itinerary_id = itineraries.id").
		Where("itinerary_saves.user_id = ?", userID).
		Preload("User.Profile").
		Order("itinerary_saves.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return itineraries, total, nil
}

func (r *itineraryRepository) Feed(ctx context.Context, viewerID uint, followingIDs []uint, limit, offset int) ([]*models.Itinerary, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Joins("JOIN users ON users.id = itineraries.user_id").
		Where("users.banned = ?", false)
	if len(followingIDs) > 0 {
		base = base.Where(
			"itineraries.user_id = ? OR (itineraries.approved_by_admin = ? AND (itineraries.visibility = ? OR (itineraries.visibility = ? AND itineraries.user_id IN ?)))",
			viewerID, true, models.VisibilityAll, models.VisibilityFollowers, followingIDs,
		)
	} else {
		base = base.Where(
			"itineraries.user_id = ? OR (itineraries.approved_by_admin = ? AND itineraries.visibility = ?)",
			viewerID, true, models.VisibilityAll,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var itineraries []*models.Itinerary
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("itineraries.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return itineraries, total, nil
}

// Top lists the highest ranked public itineraries for the discover
// surface. Only approved itineraries from non-banned authors qualify.
func (r *itineraryRepository) Top(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Joins("JOIN users ON users.id = itineraries.user_id").
		Where("users.banned = ?", false).
		Where("itineraries.visibility = ?", models.VisibilityAll).
		Where("itineraries.approved_by_admin = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var itineraries []*models.Itinerary
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("itineraries.like_count DESC, itineraries.rating DESC, itineraries.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return itineraries, total, nil
}

func (r *itineraryRepository) ListPending(ctx context.Context, limit, offset int) ([]*models.Itinerary, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("approved_by_admin = ?", false)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var itineraries []*models.Itinerary
	if err := base.Session(&gorm.Session{}).
		Preload("User.Profile").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return itineraries, total, nil
}

func (r *itineraryRepository) Counts(ctx context.Context) (int64, int64, error) {
	var total, pending int64
	if err := r.db.WithContext(ctx).Model(&models.Itinerary{}).Count(&total).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("approved_by_admin = ?", false).
		Count(&pending).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return total, pending, nil
}

// DestinationsByUser returns every destination string the user has
// published. The travel statistics aggregator extracts countries from
// these.
func (r *itineraryRepository) DestinationsByUser(ctx context.Context, userID uint) ([]string, error) {
	var destinations []string
	if err := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("user_id = ?", userID).
		Pluck("destination", &destinations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return destinations, nil
}

func (r *itineraryRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *itineraryRepository) MarkEngagement(ctx context.Context, viewerID uint, itineraries []*models.Itinerary) error {
	if viewerID == 0 || len(itineraries) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(itineraries))
	for _, it := range itineraries {
		ids = append(ids, it.ID)
	}

	var liked []uint
	if err := r.db.WithContext(ctx).
		Model(&models.ItineraryLike{}).
		Where("user_id = ? AND itinerary_id IN ?", viewerID, ids).
		Pluck("itinerary_id", &liked).Error; err != nil {
		return models.NewInternalError(err)
	}
	var saved []uint
	if err := r.db.WithContext(ctx).
		Model(&models.ItinerarySave{}).
		Where("user_id = ? AND itinerary_id IN ?", viewerID, ids).
		Pluck("itinerary_id", &saved).Error; err != nil {
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
	for _, it := range itineraries {
		_, it.Liked = likedSet[it.ID]
		_, it.Saved = savedSet[it.ID]
	}
	return nil
}
