// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role determines which settings view a user sees and which admin
// operations they may perform.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User represents a user account in the Wayfare application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FullName  string         `gorm:"not null" json:"full_name"`
	Role      Role           `gorm:"type:varchar(10);default:'member'" json:"role"`
	Banned    bool           `gorm:"default:false;index" json:"banned"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Dependent records, created atomically at registration.
	Profile              *Profile              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Statistics           *Statistics           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"statistics,omitempty"`
	AccountSettings      *AccountSettings      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"account_settings,omitempty"`
	NotificationSettings *NotificationSettings `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"notification_settings,omitempty"`
	PrivacySettings      *PrivacySettings      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"privacy_settings,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the compact user projection returned by follower/following
// lists, search results and suggestions.
type UserSummary struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	Username       string    `json:"username"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	TotalFollowers int       `json:"total_followers,omitempty"`
	TotalPosts     int       `json:"total_posts,omitempty"`
	FollowedAt     time.Time `json:"followed_at,omitzero"`
}
