package models

import (
	"time"

	"gorm.io/gorm"
)

// Visibility controls which viewers may see a piece of content.
type Visibility string

const (
	// VisibilityAll content is visible to anyone once approved.
	VisibilityAll Visibility = "ALL"
	// VisibilityFollowers content additionally requires a follow edge
	// from the viewer to the owner.
	VisibilityFollowers Visibility = "FOLLOWERS"
)

// Post represents a travel post in the Wayfare application. Engagement
// counters are denormalized; every counter mutation shares a transaction
// with the engagement edge that justifies it.
type Post struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	Caption         string         `gorm:"not null" json:"caption"`
	Details         string         `gorm:"type:text" json:"details"`
	Location        string         `json:"location"`
	ImageLinks      []string       `gorm:"serializer:json" json:"image_links"`
	Visibility      Visibility     `gorm:"type:varchar(20);default:'ALL'" json:"visibility"`
	ApprovedByAdmin bool           `gorm:"default:false;index" json:"approved_by_admin"`
	LikeCount       int            `gorm:"default:0" json:"like_count"`
	CommentCount    int            `gorm:"default:0" json:"comment_count"`
	ShareCount      int            `gorm:"default:0" json:"share_count"`
	SaveCount       int            `gorm:"default:0" json:"save_count"`
	ViewCount       int            `gorm:"default:0" json:"view_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Liked/Saved indicate whether the requesting user has an engagement
	// edge on this post (computed, not persisted).
	Liked bool `gorm:"-" json:"liked"`
	Saved bool `gorm:"-" json:"saved"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}
