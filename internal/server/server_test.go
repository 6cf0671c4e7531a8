package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfare/internal/config"
	"wayfare/internal/database"
	"wayfare/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer wires a full Server against an in-memory SQLite database
// and returns it together with a Fiber app that has all routes registered.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-12345678901234567890123456789012",
		Env:       "test",
	}
	s, err := NewServerWithDeps(cfg, db, nil)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

func signupRequest(username, email string) map[string]string {
	return map[string]string{
		"username":  username,
		"email":     email,
		"password":  "Sup3r-secret-pw!",
		"full_name": "Test Traveler",
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestSignupLoginMeFlow(t *testing.T) {
	_, app, _ := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("wanderer", "wanderer@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["token"])

	// Duplicate username conflicts.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("wanderer", "other@example.com"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Weak password is rejected before touching the database.
	weak := signupRequest("another", "another@example.com")
	weak["password"] = "short"
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/signup", "", weak)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "wanderer@example.com",
		"password": "Sup3r-secret-pw!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// Wrong password and unknown email get the same response.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "wanderer@example.com",
		"password": "Wrong-password-1!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile, _ := body["profile"].(map[string]any)
	require.NotNil(t, profile, "signup should have created a profile")
	assert.Equal(t, "wanderer", profile["username"])

	// Registration also creates the statistics row.
	resp, body = doJSON(t, app, http.MethodGet, "/api/users/me/statistics", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["total_followers"])

	// No token at all.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPrivateProfileHiddenFromStrangers(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("hermit", "hermit@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("stranger", "stranger@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	strangerToken, _ := body["token"].(string)

	// Public by default.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/profiles/hermit", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	err := db.Model(&models.AccountSettings{}).
		Where("user_id = (SELECT user_id FROM profiles WHERE username = ?)", "hermit").
		Update("account_private", true).Error
	require.NoError(t, err)

	// Private reads as missing, both anonymously and to a non-follower.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/profiles/hermit", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/profiles/hermit", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowEngagementFlow(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("author", "author@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	authorToken, _ := body["token"].(string)
	authorUser, _ := body["user"].(map[string]any)
	authorID := uint(authorUser["id"].(float64))

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("reader", "reader@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	readerToken, _ := body["token"].(string)

	followPath := fmt.Sprintf("/api/users/%d/follow", authorID)
	resp, _ = doJSON(t, app, http.MethodPost, followPath, readerToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Following twice conflicts rather than double counting.
	resp, _ = doJSON(t, app, http.MethodPost, followPath, readerToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/users/me/statistics", authorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_followers"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/posts/", authorToken, map[string]any{
		"caption":    "Golden hour at the old harbor",
		"visibility": "ALL",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := uint(body["id"].(float64))

	// A fresh post awaits moderation, so the reader cannot see it yet.
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), readerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", postID).
		Update("approved_by_admin", true).Error)

	likePath := fmt.Sprintf("/api/posts/%d/like", postID)
	resp, body = doJSON(t, app, http.MethodPost, likePath, readerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "added", body["status"])

	// Repeat like is a no-op, not an error.
	resp, body = doJSON(t, app, http.MethodPost, likePath, readerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "already", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["like_count"])

	resp, body = doJSON(t, app, http.MethodDelete, likePath, readerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "removed", body["status"])

	// Unlike without a like reports absent and keeps the counter at zero.
	resp, body = doJSON(t, app, http.MethodDelete, likePath, readerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "absent", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["like_count"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("member", "member@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	memberToken, _ := body["token"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("operator", "operator@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	adminToken, _ := body["token"].(string)
	adminUser, _ := body["user"].(map[string]any)
	adminID := uint(adminUser["id"].(float64))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", adminID).
		Update("role", models.RoleAdmin).Error)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/users", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBannedUserLockedOut(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("troublemaker", "trouble@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	user, _ := body["user"].(map[string]any)
	userID := uint(user["id"].(float64))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
		Update("banned", true).Error)

	// Existing tokens stop working for protected routes.
	resp, body = doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Account suspended", body["error"])

	// Fresh logins are refused too.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "trouble@example.com",
		"password": "Sup3r-secret-pw!",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBannedAuthorKeepsOwnPostAccess(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("exile", "exile@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	authorToken, _ := body["token"].(string)
	authorUser, _ := body["user"].(map[string]any)
	authorID := uint(authorUser["id"].(float64))

	resp, body = doJSON(t, app, http.MethodPost, "/api/posts/", authorToken, map[string]any{
		"caption":    "Last light on the ridge",
		"visibility": "ALL",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := uint(body["id"].(float64))

	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", postID).
		Update("approved_by_admin", true).Error)

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("onlooker", "onlooker@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	onlookerToken, _ := body["token"].(string)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", authorID).
		Update("banned", true).Error)

	// The banned author can still fetch their own post by ID.
	postPath := fmt.Sprintf("/api/posts/%d", postID)
	resp, _ = doJSON(t, app, http.MethodGet, postPath, authorToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Everyone else reads it as missing.
	resp, _ = doJSON(t, app, http.MethodGet, postPath, onlookerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, postPath, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeactivateThenLoginReactivates(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("pauser", "pauser@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	user, _ := body["user"].(map[string]any)
	userID := uint(user["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/users/me/deactivate", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var active bool
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
		Pluck("active", &active).Error)
	assert.False(t, active)

	// Logging back in flips the account to active again.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "pauser@example.com",
		"password": "Sup3r-secret-pw!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
		Pluck("active", &active).Error)
	assert.True(t, active)
}

func TestAdminDashboardCounts(t *testing.T) {
	_, app, db := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", signupRequest("overseer", "overseer@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	adminToken, _ := body["token"].(string)
	adminUser, _ := body["user"].(map[string]any)
	adminID := uint(adminUser["id"].(float64))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", adminID).
		Update("role", models.RoleAdmin).Error)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/posts/", adminToken, map[string]any{
		"caption":    "Sunrise over the dunes",
		"visibility": "ALL",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_users"])
	assert.Equal(t, float64(0), body["banned_users"])
	assert.Equal(t, float64(1), body["total_posts"])
	// Fresh posts await moderation.
	assert.Equal(t, float64(1), body["pending_posts"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/admin/posts/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
}

func TestHealthEndpoints(t *testing.T) {
	_, app, _ := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	checks, _ := body["checks"].(map[string]any)
	require.NotNil(t, checks)
	assert.Equal(t, "healthy", checks["database"])
	assert.Equal(t, "unavailable", checks["redis"])
}
