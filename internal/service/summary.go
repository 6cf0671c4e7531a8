package service

import (
	"time"

	"wayfare/internal/models"
)

var zeroTime time.Time

// summarize projects a user (with preloaded profile and statistics) into
// the compact list representation.
func summarize(u *models.User, followedAt time.Time) models.UserSummary {
	s := models.UserSummary{
		ID:         u.ID,
		FullName:   u.FullName,
		FollowedAt: followedAt,
	}
	if u.Profile != nil {
		s.Username = u.Profile.Username
		s.ProfileImage = u.Profile.ProfileImage
		s.Bio = u.Profile.Bio
	}
	if u.Statistics != nil {
		s.TotalFollowers = u.Statistics.TotalFollowers
		s.TotalPosts = u.Statistics.TotalPosts
	}
	return s
}

// notifyIfNotSelf builds a notification for ownerID unless the actor is
// acting on their own content, in which case no notification is produced.
func notifyIfNotSelf(ownerID uint, actor *models.User, typ models.NotificationType, content string) *models.Notification {
	if actor == nil || actor.ID == ownerID {
		return nil
	}
	return &models.Notification{
		UserID:  ownerID,
		Type:    typ,
		Content: content,
		ActorID: &actor.ID,
	}
}
