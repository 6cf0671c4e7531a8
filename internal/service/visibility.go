// Package service contains the business logic layer of the application.
package service

import "wayfare/internal/models"

// CanViewProfile decides whether a viewer may see a target user's profile
// and followers-only surface. Owners and admins always may; private
// accounts are visible to followers only. Callers translate a false
// result into NotFound rather than Forbidden, so private accounts do not
// leak their existence.
func CanViewProfile(viewer *models.User, target *models.User, isFollower bool) bool {
	if viewer != nil && viewer.ID == target.ID {
		return true
	}
	if viewer != nil && viewer.IsAdmin() {
		return true
	}
	if target.Banned {
		return false
	}
	if target.AccountSettings != nil && target.AccountSettings.AccountPrivate {
		return isFollower
	}
	return true
}

// CanViewContent decides whether a viewer may see a single content item
// given its visibility setting and moderation state. Owners and admins
// always may; everyone else only sees approved items. ALL items are
// public; FOLLOWERS items require the viewer to follow the owner.
func CanViewContent(visibility models.Visibility, ownerID uint, approved bool, viewer *models.User, isFollower bool) bool {
	if viewer != nil && viewer.ID == ownerID {
		return true
	}
	if viewer != nil && viewer.IsAdmin() {
		return true
	}
	if !approved {
		return false
	}
	if visibility == models.VisibilityFollowers {
		return isFollower
	}
	return true
}
