package repository

import (
	"context"
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationsAndCountByUser(t *testing.T) {
	repo := NewItineraryRepository(testDB)
	user := createTestUser(t)

	createTestItinerary(t, user.ID, "Kyoto, Japan")
	createTestItinerary(t, user.ID, "Iceland")
	createTestItinerary(t, user.ID, "Osaka, Japan")

	destinations, err := repo.DestinationsByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Kyoto, Japan", "Iceland", "Osaka, Japan"}, destinations)

	count, err := repo.CountByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestItineraryFeedHidesUnapprovedFromOthers(t *testing.T) {
	repo := NewItineraryRepository(testDB)
	viewer := createTestUser(t)
	author := createTestUser(t)

	pending := &models.Itinerary{
		UserID:      author.ID,
		Title:       "Trip to Patagonia",
		Destination: "Patagonia",
		Visibility:  models.VisibilityAll,
	}
	require.NoError(t, repo.Create(context.Background(), pending))
	approved := createTestItinerary(t, author.ID, "Marrakesh, Morocco")

	itineraries, _, err := repo.Feed(context.Background(), viewer.ID, nil, 100, 0)
	require.NoError(t, err)

	got := make(map[uint]bool, len(itineraries))
	for _, it := range itineraries {
		got[it.ID] = true
	}
	assert.False(t, got[pending.ID], "pending itineraries stay out of other feeds")
	assert.True(t, got[approved.ID])

	// The author still sees their own pending itinerary.
	own, _, err := repo.Feed(context.Background(), author.ID, nil, 100, 0)
	require.NoError(t, err)
	found := false
	for _, it := range own {
		if it.ID == pending.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestItineraryDeleteIsHardAndOwnerScoped(t *testing.T) {
	repo := NewItineraryRepository(testDB)
	owner := createTestUser(t)
	other := createTestUser(t)
	itinerary := createTestItinerary(t, owner.ID, "Lisbon, Portugal")

	err := repo.Delete(context.Background(), itinerary.ID, other.ID)
	require.Error(t, err)

	require.NoError(t, repo.Delete(context.Background(), itinerary.ID, owner.ID))

	_, err = repo.GetByID(context.Background(), itinerary.ID)
	require.Error(t, err)

	count, err := repo.CountByUser(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
