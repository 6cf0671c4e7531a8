package database

import "wayfare/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.AccountSettings{},
		&models.NotificationSettings{},
		&models.PrivacySettings{},
		&models.Statistics{},
		&models.FollowEdge{},
		&models.Post{},
		&models.PostLike{},
		&models.PostSave{},
		&models.PostShare{},
		&models.Itinerary{},
		&models.ItineraryLike{},
		&models.ItinerarySave{},
		&models.Comment{},
		&models.Reply{},
		&models.CommentLike{},
		&models.Notification{},
	}
}
