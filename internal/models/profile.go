package models

import (
	"time"
)

// Profile holds the public-facing identity of a user. Each user owns
// exactly one profile; the username is globally unique.
type Profile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Username          string    `gorm:"unique;not null" json:"username"`
	Bio               string    `json:"bio"`
	ProfileImage      string    `json:"profile_image"`
	CoverImage        string    `json:"cover_image"`
	InstagramUsername string    `json:"instagram_username,omitempty"`
	TwitterUsername   string    `json:"twitter_username,omitempty"`
	FacebookUsername  string    `json:"facebook_username,omitempty"`
	CountriesExplored []string  `gorm:"serializer:json" json:"countries_explored"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
