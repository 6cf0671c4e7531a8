package repository

import (
	"context"
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertTravelPreservesSocialCounters(t *testing.T) {
	statsRepo := NewStatisticsRepository(testDB)
	followRepo := NewFollowRepository(testDB)
	user := createTestUser(t)
	fan := createTestUser(t)

	require.NoError(t, followRepo.Create(context.Background(), &models.FollowEdge{
		FollowerID: fan.ID, FolloweeID: user.ID,
	}, nil))

	require.NoError(t, statsRepo.UpsertTravel(context.Background(), user.ID, 5, 3, 2))

	stats := statsFor(t, user.ID)
	assert.Equal(t, 5, stats.TotalTrips)
	assert.Equal(t, 3, stats.CountriesVisited)
	assert.Equal(t, 2, stats.ContinentsVisited)
	assert.Equal(t, 1, stats.TotalFollowers, "travel upsert must not clobber follower counters")

	// Recomputation overwrites the travel columns in place.
	require.NoError(t, statsRepo.UpsertTravel(context.Background(), user.ID, 6, 4, 2))
	stats = statsFor(t, user.ID)
	assert.Equal(t, 6, stats.TotalTrips)
	assert.Equal(t, 4, stats.CountriesVisited)
	assert.Equal(t, 1, stats.TotalFollowers)
}
