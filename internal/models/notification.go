package models

import "time"

// NotificationType tags the social event that produced a notification.
type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

// Notification is an append-only record of a social event for a recipient.
// It is written in the same transaction as the action that triggered it and
// is never created for self-directed actions.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      uint             `gorm:"not null;index" json:"user_id"`
	Type        NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Content     string           `gorm:"not null" json:"content"`
	ActorID     *uint            `json:"actor_id,omitempty"`
	PostID      *uint            `json:"post_id,omitempty"`
	ItineraryID *uint            `json:"itinerary_id,omitempty"`
	Read        bool             `gorm:"default:false;index" json:"read"`
	CreatedAt   time.Time        `json:"created_at"`

	// Relationships
	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
