package repository

import (
	"context"
	"errors"

	"wayfare/internal/cache"
	"wayfare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatisticsRepository defines the interface for statistics data operations
type StatisticsRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Statistics, error)
	UpsertTravel(ctx context.Context, userID uint, totalTrips, countriesVisited, continentsVisited int) error
}

// statisticsRepository implements StatisticsRepository
type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) GetByUserID(ctx context.Context, userID uint) (*models.Statistics, error) {
	var stats models.Statistics
	err := cache.Aside(ctx, cache.StatisticsKey(userID), &stats, cache.StatisticsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			First(&stats).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Statistics", userID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpsertTravel writes the recomputed travel aggregates. Follower and post
// counters on an existing row are left alone; only the travel columns
// change.
func (r *statisticsRepository) UpsertTravel(ctx context.Context, userID uint, totalTrips, countriesVisited, continentsVisited int) error {
	stats := models.Statistics{
		UserID:            userID,
		TotalTrips:        totalTrips,
		CountriesVisited:  countriesVisited,
		ContinentsVisited: continentsVisited,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_trips", "countries_visited", "continents_visited", "updated_at"}),
		}).
		Create(&stats).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateStatistics(ctx, userID)
	return nil
}
