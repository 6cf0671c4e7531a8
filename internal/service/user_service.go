package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/validation"
)

// UserService provides profile and settings business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	statsSvc   *StatisticsService
}

// UpdateProfileInput carries the mutable profile fields. Empty strings
// leave the corresponding field unchanged; CountriesExplored replaces the
// stored list when non-nil.
type UpdateProfileInput struct {
	Username          string
	Bio               string
	ProfileImage      string
	CoverImage        string
	CountriesExplored []string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, statsSvc *StatisticsService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		statsSvc:   statsSvc,
	}
}

// GetByID returns the user without any visibility gating. Callers that
// serve profile pages go through GetProfile instead.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns a user's profile as seen by the viewer. A private
// profile that the viewer does not follow is reported as NotFound, not
// Forbidden, so its existence is not revealed.
func (s *UserService) GetProfile(ctx context.Context, viewer *models.User, username string) (*models.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	isFollower := false
	if viewer != nil && viewer.ID != target.ID {
		isFollower, err = s.followRepo.Exists(ctx, viewer.ID, target.ID)
		if err != nil {
			return nil, err
		}
	}
	if !CanViewProfile(viewer, target, isFollower) {
		return nil, models.NewNotFoundError("User", username)
	}
	return target, nil
}

// UpdateProfile applies the input to the user's own profile. Changing the
// explored countries triggers a travel statistics recomputation.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, models.NewNotFoundError("Profile", userID)
	}

	const maxBioLen = 500

	if in.Username != "" && in.Username != user.Profile.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Profile.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Profile.Bio = in.Bio
	}
	if in.ProfileImage != "" {
		user.Profile.ProfileImage = in.ProfileImage
	}
	if in.CoverImage != "" {
		user.Profile.CoverImage = in.CoverImage
	}

	countriesChanged := in.CountriesExplored != nil
	if countriesChanged {
		user.Profile.CountriesExplored = in.CountriesExplored
	}

	if err := s.userRepo.UpdateProfile(ctx, user.Profile); err != nil {
		return nil, err
	}
	if countriesChanged {
		if _, err := s.statsSvc.Recompute(ctx, userID); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, userID)
}

// GetSettings returns the settings payload shaped by the caller's role.
// Members see account, push/email notification and privacy settings plus
// their statistics; admins see the admin notification subset only.
func (s *UserService) GetSettings(ctx context.Context, user *models.User) (any, error) {
	account, notification, privacy, err := s.userRepo.GetSettings(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return models.NewAdminSettingsView(notification), nil
	}
	stats, err := s.statsSvc.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return models.NewMemberSettingsView(account, notification, privacy, stats), nil
}

// UpdateAccountSettings toggles account privacy and suggestion opt-in.
func (s *UserService) UpdateAccountSettings(ctx context.Context, userID uint, accountPrivate, suggestAccount bool) (*models.AccountSettings, error) {
	account, _, _, err := s.userRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	account.AccountPrivate = accountPrivate
	account.SuggestAccount = suggestAccount
	if err := s.userRepo.UpdateAccountSettings(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateNotificationSettings updates the notification toggles relevant to
// the caller's role and leaves the rest untouched.
func (s *UserService) UpdateNotificationSettings(ctx context.Context, user *models.User, push, email, admin, security bool) (*models.NotificationSettings, error) {
	_, notification, _, err := s.userRepo.GetSettings(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		notification.AdminNotification = admin
		notification.SecurityAlerts = security
	} else {
		notification.PushNotification = push
		notification.EmailNotification = email
	}
	if err := s.userRepo.UpdateNotificationSettings(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// UpdatePrivacySettings updates the security related toggles on the
// caller's own account.
func (s *UserService) UpdatePrivacySettings(ctx context.Context, userID uint, twoFactor, rememberMe bool, trustedContactEmail string) (*models.PrivacySettings, error) {
	if trustedContactEmail != "" {
		if err := validation.ValidateEmail(trustedContactEmail); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}
	_, _, privacy, err := s.userRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	privacy.TwoFactorEnabled = twoFactor
	privacy.RememberMe = rememberMe
	privacy.TrustedContactEmail = trustedContactEmail
	if err := s.userRepo.UpdatePrivacySettings(ctx, privacy); err != nil {
		return nil, err
	}
	return privacy, nil
}

// DeactivateAccount marks the account inactive. The content stays in
// place and the account reactivates on the next successful login.
func (s *UserService) DeactivateAccount(ctx context.Context, userID uint) error {
	return s.userRepo.SetActive(ctx, userID, false)
}

// DeleteAccount soft-deletes the caller's account.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}

// Search finds non-banned users by username or full name.
func (s *UserService) Search(ctx context.Context, query string, limit, offset int) (*models.Page[models.UserSummary], error) {
	if query == "" {
		return nil, models.NewValidationError("Search query cannot be empty")
	}
	users, total, err := s.userRepo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, summarize(&users[i], zeroTime))
	}
	return models.NewPage(summaries, total, offset, limit), nil
}
