package database

import (
	"testing"

	modelspkg "wayfare/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesFollowEdge(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*modelspkg.FollowEdge); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include FollowEdge")
}
