package models

import "time"

// EngagementKind names a (user, item) edge type backed by a unique index
// and a denormalized counter on the target row.
type EngagementKind string

const (
	KindPostLike      EngagementKind = "post_like"
	KindPostSave      EngagementKind = "post_save"
	KindItineraryLike EngagementKind = "itinerary_like"
	KindItinerarySave EngagementKind = "itinerary_save"
	KindCommentLike   EngagementKind = "comment_like"
)

// EngagementStatus reports the outcome of an add or remove. Redundant
// operations are not errors; callers learn whether anything changed.
type EngagementStatus string

const (
	StatusAdded   EngagementStatus = "added"
	StatusAlready EngagementStatus = "already"
	StatusRemoved EngagementStatus = "removed"
	StatusAbsent  EngagementStatus = "absent"
)

// Changed reports whether the operation modified state.
func (s EngagementStatus) Changed() bool {
	return s == StatusAdded || s == StatusRemoved
}

// Engagement edges link a user to a content item. Like and Save edges are
// unique per (user, item) pair; shares are append-only.

// PostLike records a user's like on a post.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_pair;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PostLike) TableName() string { return "post_likes" }

// PostSave records a user's bookmark of a post.
type PostSave struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_save_pair;index" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_save_pair" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// TableName specifies the table name for GORM
func (PostSave) TableName() string { return "post_saves" }

// PostShare records a share action. Shares are never unique-constrained:
// the same user may share the same post any number of times.
type PostShare struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	SharedTo  string    `json:"shared_to,omitempty"`
	Token     string    `gorm:"type:varchar(36)" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PostShare) TableName() string { return "post_shares" }

// ItineraryLike records a user's like on an itinerary.
type ItineraryLike struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_itinerary_like_pair" json:"user_id"`
	ItineraryID uint      `gorm:"not null;uniqueIndex:idx_itinerary_like_pair;index" json:"itinerary_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (ItineraryLike) TableName() string { return "itinerary_likes" }

// ItinerarySave records a user's bookmark of an itinerary.
type ItinerarySave struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_itinerary_save_pair;index" json:"user_id"`
	ItineraryID uint      `gorm:"not null;uniqueIndex:idx_itinerary_save_pair" json:"itinerary_id"`
	CreatedAt   time.Time `json:"created_at"`

	Itinerary Itinerary `gorm:"foreignKey:ItineraryID" json:"itinerary,omitempty"`
}

// TableName specifies the table name for GORM
func (ItinerarySave) TableName() string { return "itinerary_saves" }

// CommentLike records a user's like on a comment.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like_pair" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_like_pair;index" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (CommentLike) TableName() string { return "comment_likes" }
