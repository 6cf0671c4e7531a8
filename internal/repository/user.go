// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"wayfare/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateWithDefaults(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	GetSettings(ctx context.Context, userID uint) (*models.AccountSettings, *models.NotificationSettings, *models.PrivacySettings, error)
	UpdateAccountSettings(ctx context.Context, settings *models.AccountSettings) error
	UpdateNotificationSettings(ctx context.Context, settings *models.NotificationSettings) error
	UpdatePrivacySettings(ctx context.Context, settings *models.PrivacySettings) error
	SetBanned(ctx context.Context, id uint, banned bool) error
	SetActive(ctx context.Context, id uint, active bool) error
	CountBanned(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithDefaults creates the user together with its profile, settings
// and statistics rows in one transaction. Registration is all or nothing;
// a user row never exists without its satellite rows.
func (r *userRepository) CreateWithDefaults(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if user.Profile != nil {
			user.Profile.UserID = user.ID
			if err := tx.Create(user.Profile).Error; err != nil {
				return err
			}
		}
		satellites := []any{
			&models.AccountSettings{UserID: user.ID, SuggestAccount: true},
			&models.NotificationSettings{UserID: user.ID, PushNotification: true, EmailNotification: true, AdminNotification: true, SecurityAlerts: true},
			&models.PrivacySettings{UserID: user.ID},
			&models.Statistics{UserID: user.ID},
		}
		for _, s := range satellites {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("User", user.Email)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Statistics").
		Preload("AccountSettings").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", email)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.username = ?", username).
		Preload("Profile").
		Preload("Statistics").
		Preload("AccountSettings").
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateProfile saves the profile row. A taken username surfaces as
// AlreadyExists.
func (r *userRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("Username", profile.Username)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetSettings(ctx context.Context, userID uint) (*models.AccountSettings, *models.NotificationSettings, *models.PrivacySettings, error) {
	var account models.AccountSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, models.NewNotFoundError("Settings", userID)
		}
		return nil, nil, nil, models.NewInternalError(err)
	}
	var notification models.NotificationSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&notification).Error; err != nil {
		return nil, nil, nil, models.NewInternalError(err)
	}
	var privacy models.PrivacySettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&privacy).Error; err != nil {
		return nil, nil, nil, models.NewInternalError(err)
	}
	return &account, &notification, &privacy, nil
}

func (r *userRepository) UpdateAccountSettings(ctx context.Context, settings *models.AccountSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) UpdateNotificationSettings(ctx context.Context, settings *models.NotificationSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) UpdatePrivacySettings(ctx context.Context, settings *models.PrivacySettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("banned", banned)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

func (r *userRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

func (r *userRepository) CountBanned(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("banned = ?", true).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Statistics").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

func (r *userRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.User, int64, error) {
	pattern := "%" + query + "%"
	base := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Joins("JOIN statistics ON statistics.user_id = users.id").
		Where("users.banned = ?", false).
		Where("LOWER(profiles.username) LIKE LOWER(?) OR LOWER(users.full_name) LIKE LOWER(?)", pattern, pattern)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	// Popular accounts first.
	var users []models.User
	if err := base.Session(&gorm.Session{}).
		Preload("Profile").
		Preload("Statistics").
		Order("statistics.total_followers DESC, users.full_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
