package models

import "time"

// Itinerary represents a published trip plan. Destination is free text in
// "City, Country" or "Country" form; the travel statistics aggregator
// extracts the country token from it.
type Itinerary struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Destination     string     `gorm:"not null" json:"destination"`
	DurationDays    int        `json:"duration_days"`
	MainImageLink   string     `json:"main_image_link"`
	Rating          float64    `gorm:"default:0" json:"rating"`
	Visibility      Visibility `gorm:"type:varchar(20);default:'ALL'" json:"visibility"`
	ApprovedByAdmin bool       `gorm:"default:false;index" json:"approved_by_admin"`
	LikeCount       int        `gorm:"default:0" json:"like_count"`
	SaveCount       int        `gorm:"default:0" json:"save_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Liked bool `gorm:"-" json:"liked"`
	Saved bool `gorm:"-" json:"saved"`
}

// TableName specifies the table name for GORM
func (Itinerary) TableName() string {
	return "itineraries"
}
