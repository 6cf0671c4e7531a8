package repository

import (
	"context"
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWithDefaultsCreatesSatelliteRows(t *testing.T) {
	user := createTestUser(t)

	loaded, err := NewUserRepository(testDB).GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Profile)
	require.NotNil(t, loaded.Statistics)
	require.NotNil(t, loaded.AccountSettings)
	assert.Equal(t, 0, loaded.Statistics.TotalFollowers)
	assert.True(t, loaded.AccountSettings.SuggestAccount)
	assert.False(t, loaded.AccountSettings.AccountPrivate)
}

func TestDuplicateEmailRollsBackRegistration(t *testing.T) {
	repo := NewUserRepository(testDB)
	existing := createTestUser(t)

	dup := &models.User{
		Email:    existing.Email,
		Password: "x",
		FullName: "Duplicate",
		Profile:  &models.Profile{Username: "dup-" + existing.Profile.Username},
	}
	err := repo.CreateWithDefaults(context.Background(), dup)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeAlreadyExists, appErr.Code)

	// The transaction rolled back; no orphan profile row remains.
	var count int64
	require.NoError(t, testDB.Model(&models.Profile{}).
		Where("username = ?", "dup-"+existing.Profile.Username).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetByUsername(t *testing.T) {
	user := createTestUser(t)

	loaded, err := NewUserRepository(testDB).GetByUsername(context.Background(), user.Profile.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)

	_, err = NewUserRepository(testDB).GetByUsername(context.Background(), "no-such-user")
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestSearchMatchesUsernameAndFullName(t *testing.T) {
	repo := NewUserRepository(testDB)
	user := createTestUser(t)

	require.NoError(t, testDB.Model(&models.Profile{}).
		Where("user_id = ?", user.ID).
		Update("username", "wanderlust_wendy").Error)

	users, total, err := repo.Search(context.Background(), "WANDERLUST", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)
}
