package models

import "time"

// Statistics is the per-user set of denormalized counters. These are
// read-through caches over the edge and content tables, never the source
// of truth: every mutation of them commits in the same transaction as the
// edge that justifies it, and the travel counters are rebuilt wholesale by
// the statistics recomputation.
type Statistics struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	TotalFollowers    int       `gorm:"default:0" json:"total_followers"`
	TotalFollowing    int       `gorm:"default:0" json:"total_following"`
	TotalPosts        int       `gorm:"default:0" json:"total_posts"`
	TotalTrips        int       `gorm:"default:0" json:"total_trips"`
	CountriesVisited  int       `gorm:"default:0" json:"countries_visited"`
	ContinentsVisited int       `gorm:"default:0" json:"continents_visited"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Statistics) TableName() string {
	return "statistics"
}
