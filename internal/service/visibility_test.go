package service

import (
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanViewProfile(t *testing.T) {
	private := func() *models.User {
		return &models.User{
			ID:              2,
			AccountSettings: &models.AccountSettings{AccountPrivate: true},
		}
	}
	public := func() *models.User {
		return &models.User{ID: 2, AccountSettings: &models.AccountSettings{}}
	}

	tests := []struct {
		name       string
		viewer     *models.User
		target     *models.User
		isFollower bool
		want       bool
	}{
		{"anonymous sees public", nil, public(), false, true},
		{"anonymous blocked from private", nil, private(), false, false},
		{"stranger blocked from private", &models.User{ID: 9}, private(), false, false},
		{"follower sees private", &models.User{ID: 9}, private(), true, true},
		{"owner always sees own", &models.User{ID: 2}, private(), false, true},
		{"admin sees private", &models.User{ID: 9, Role: models.RoleAdmin}, private(), false, true},
		{"banned target hidden", &models.User{ID: 9}, &models.User{ID: 2, Banned: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewProfile(tt.viewer, tt.target, tt.isFollower))
		})
	}
}

func TestCanViewContent(t *testing.T) {
	tests := []struct {
		name       string
		visibility models.Visibility
		ownerID    uint
		approved   bool
		viewer     *models.User
		isFollower bool
		want       bool
	}{
		{"public to anonymous", models.VisibilityAll, 2, true, nil, false, true},
		{"followers-only to anonymous", models.VisibilityFollowers, 2, true, nil, false, false},
		{"followers-only to stranger", models.VisibilityFollowers, 2, true, &models.User{ID: 9}, false, false},
		{"followers-only to follower", models.VisibilityFollowers, 2, true, &models.User{ID: 9}, true, true},
		{"followers-only to owner", models.VisibilityFollowers, 2, true, &models.User{ID: 2}, false, true},
		{"followers-only to admin", models.VisibilityFollowers, 2, true, &models.User{ID: 9, Role: models.RoleAdmin}, false, true},
		{"unapproved hidden from anonymous", models.VisibilityAll, 2, false, nil, false, false},
		{"unapproved hidden from stranger", models.VisibilityAll, 2, false, &models.User{ID: 9}, false, false},
		{"unapproved hidden from follower", models.VisibilityFollowers, 2, false, &models.User{ID: 9}, true, false},
		{"unapproved visible to owner", models.VisibilityAll, 2, false, &models.User{ID: 2}, false, true},
		{"unapproved visible to admin", models.VisibilityAll, 2, false, &models.User{ID: 9, Role: models.RoleAdmin}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewContent(tt.visibility, tt.ownerID, tt.approved, tt.viewer, tt.isFollower))
		})
	}
}
