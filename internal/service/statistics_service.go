package service

import (
	"context"

	"wayfare/internal/geo"
	"wayfare/internal/middleware"
	"wayfare/internal/models"
	"wayfare/internal/repository"
)

// StatisticsService derives travel statistics from itinerary destinations
// and explored countries, and maintains them on the statistics row.
type StatisticsService struct {
	statsRepo     repository.StatisticsRepository
	itineraryRepo repository.ItineraryRepository
	userRepo      repository.UserRepository
}

// NewStatisticsService returns a new StatisticsService.
func NewStatisticsService(
	statsRepo repository.StatisticsRepository,
	itineraryRepo repository.ItineraryRepository,
	userRepo repository.UserRepository,
) *StatisticsService {
	return &StatisticsService{
		statsRepo:     statsRepo,
		itineraryRepo: itineraryRepo,
		userRepo:      userRepo,
	}
}

// Recompute rebuilds the user's travel aggregates from scratch: the
// country set is the union of countries extracted from itinerary
// destinations and the profile's explored countries, and the continent
// set is derived from the known countries. Unknown countries still count
// as countries; they just contribute no continent. The result is
// upserted, never incrementally patched.
func (s *StatisticsService) Recompute(ctx context.Context, userID uint) (*models.Statistics, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	destinations, err := s.itineraryRepo.DestinationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalTrips, err := s.itineraryRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	countries := make(map[string]struct{})
	for _, destination := range destinations {
		if country := geo.ExtractCountry(destination); country != "" {
			countries[country] = struct{}{}
		}
	}
	if user.Profile != nil {
		for _, country := range user.Profile.CountriesExplored {
			if country != "" {
				countries[country] = struct{}{}
			}
		}
	}

	continents := make(map[string]struct{})
	for country := range countries {
		if continent, ok := geo.Continent(country); ok {
			continents[continent] = struct{}{}
		}
	}

	if err := s.statsRepo.UpsertTravel(ctx, userID, int(totalTrips), len(countries), len(continents)); err != nil {
		return nil, err
	}
	middleware.StatsRecomputes.Inc()
	return s.statsRepo.GetByUserID(ctx, userID)
}

// Get returns the user's statistics row.
func (s *StatisticsService) Get(ctx context.Context, userID uint) (*models.Statistics, error) {
	return s.statsRepo.GetByUserID(ctx, userID)
}
