package validation

import (
	"testing"

	"wayfare/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!Password", false},
		{"too short", "Sh0rt!pw", true},
		{"no uppercase", "weak!password123", true},
		{"no lowercase", "WEAK!PASSWORD123", true},
		{"no digit", "Weak!Password", true},
		{"no special", "WeakPassword123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("wander_lust-99"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("_leading"))
	assert.Error(t, ValidateUsername("trailing-"))
	assert.Error(t, ValidateUsername("bad space"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("traveler@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidateVisibility(t *testing.T) {
	assert.NoError(t, ValidateVisibility(models.VisibilityAll))
	assert.NoError(t, ValidateVisibility(models.VisibilityFollowers))
	assert.Error(t, ValidateVisibility(models.Visibility("FRIENDS")))
}
