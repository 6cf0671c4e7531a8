package models

import "time"

// FollowEdge is the directed follow relation. The unique index on the
// ordered pair is the authoritative guard against duplicate follows; the
// follower and following lists are two query directions over this single
// table, so the mirrored projections can never disagree.
type FollowEdge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (FollowEdge) TableName() string {
	return "follows"
}
