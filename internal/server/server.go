// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"wayfare/internal/cache"
	"wayfare/internal/config"
	"wayfare/internal/database"
	"wayfare/internal/middleware"
	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo         repository.UserRepository
	followRepo       repository.FollowRepository
	postRepo         repository.PostRepository
	itineraryRepo    repository.ItineraryRepository
	engagementRepo   repository.EngagementRepository
	notificationRepo repository.NotificationRepository
	statsRepo        repository.StatisticsRepository

	userService         *service.UserService
	followService       *service.FollowService
	postService         *service.PostService
	itineraryService    *service.ItineraryService
	engagementService   *service.EngagementService
	notificationService *service.NotificationService
	statsService        *service.StatisticsService
	adminService        *service.AdminService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("wayfare-api"),
		userRepo:         repository.NewUserRepository(db),
		followRepo:       repository.NewFollowRepository(db),
		postRepo:         repository.NewPostRepository(db),
		itineraryRepo:    repository.NewItineraryRepository(db),
		engagementRepo:   repository.NewEngagementRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		statsRepo:        repository.NewStatisticsRepository(db),
	}

	server.statsService = service.NewStatisticsService(server.statsRepo, server.itineraryRepo, server.userRepo)
	server.userService = service.NewUserService(server.userRepo, server.followRepo, server.statsService)
	server.followService = service.NewFollowService(server.followRepo, server.userRepo)
	server.postService = service.NewPostService(server.postRepo, server.followRepo, server.userRepo)
	server.itineraryService = service.NewItineraryService(server.itineraryRepo, server.followRepo, server.statsService)
	server.engagementService = service.NewEngagementService(server.engagementRepo, server.postRepo, server.itineraryRepo, server.followRepo)
	server.notificationService = service.NewNotificationService(server.notificationRepo)
	server.adminService = service.NewAdminService(server.userRepo, server.postRepo, server.itineraryRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Wayfare Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)

	// Public browse routes; an Authorization header widens what is visible.
	api.Get("/profiles/:username", s.GetProfile)
	api.Get("/users/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchUsers)
	api.Get("/posts/:id/comments", s.GetComments)
	api.Get("/posts/:id", s.GetPost)
	api.Get("/itineraries/:id", s.GetItinerary)
	api.Get("/comments/:id/replies", s.GetReplies)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// Current user routes
	me := protected.Group("/users/me")
	me.Get("/", s.GetMyProfile)
	me.Put("/", s.UpdateMyProfile)
	me.Delete("/", s.DeleteMyAccount)
	me.Post("/deactivate", s.DeactivateMyAccount)
	me.Get("/settings", s.GetMySettings)
	me.Put("/settings/account", s.UpdateMyAccountSettings)
	me.Put("/settings/notifications", s.UpdateMyNotificationSettings)
	me.Put("/settings/privacy", s.UpdateMyPrivacySettings)
	me.Get("/statistics", s.GetMyStatistics)
	me.Get("/saved/posts", s.GetSavedPosts)
	me.Get("/saved/itineraries", s.GetSavedItineraries)

	// User routes. Specific /:id/:resource routes go BEFORE generic /:id.
	users := protected.Group("/users")
	users.Get("/:id/followers", s.GetFollowers)
	users.Get("/:id/following", s.GetFollowing)
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id/itineraries", s.GetUserItineraries)
	users.Get("/:id/follow", s.GetFollowStatus)
	users.Post("/:id/follow", s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)

	// Discovery routes
	discover := protected.Group("/discover")
	discover.Get("/suggested", s.GetSuggestedUsers)
	discover.Get("/top", s.GetTopPosts)
	discover.Get("/top-itineraries", s.GetTopItineraries)

	// Feed routes
	feed := protected.Group("/feed")
	feed.Get("/", s.GetFeed)
	feed.Get("/itineraries", s.GetItineraryFeed)

	// Post routes
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/like", s.LikePost)
	posts.Delete("/:id/like", s.UnlikePost)
	posts.Post("/:id/save", s.SavePost)
	posts.Delete("/:id/save", s.UnsavePost)
	posts.Post("/:id/share", s.SharePost)
	posts.Post("/:id/comments", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.CreateComment)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Comment routes
	comments := protected.Group("/comments")
	comments.Post("/:id/like", s.LikeComment)
	comments.Delete("/:id/like", s.UnlikeComment)
	comments.Post("/:id/replies", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_reply"), s.CreateReply)
	comments.Delete("/:id", s.DeleteComment)

	// Itinerary routes
	itineraries := protected.Group("/itineraries")
	itineraries.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_itinerary"), s.CreateItinerary)
	itineraries.Post("/:id/like", s.LikeItinerary)
	itineraries.Delete("/:id/like", s.UnlikeItinerary)
	itineraries.Post("/:id/save", s.SaveItinerary)
	itineraries.Delete("/:id/save", s.UnsaveItinerary)
	itineraries.Put("/:id", s.UpdateItinerary)
	itineraries.Delete("/:id", s.DeleteItinerary)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.Get("/", s.GetNotifications)
	notifications.Get("/unread-count", s.GetUnreadNotificationCount)
	notifications.Post("/read-all", s.MarkAllNotificationsRead)
	notifications.Post("/:id/read", s.MarkNotificationRead)
	notifications.Delete("/:id", s.DeleteNotification)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/dashboard", s.AdminDashboard)
	admin.Get("/users", s.AdminListUsers)
	admin.Post("/users/:id/ban", s.BanUser)
	admin.Post("/users/:id/unban", s.UnbanUser)
	admin.Get("/posts/pending", s.AdminPendingPosts)
	admin.Post("/posts/:id/approve", s.ApprovePost)
	admin.Get("/itineraries/pending", s.AdminPendingItineraries)
	admin.Post("/itineraries/:id/approve", s.ApproveItinerary)
	admin.Delete("/itineraries/:id", s.AdminDeleteItinerary)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app runs without Redis, readiness just reports it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		userID, ok := s.parseToken(c, tokenString)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// parseToken validates the JWT and returns the user ID it carries.
func (s *Server) parseToken(c *fiber.Ctx, tokenString string) (uint, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "wayfare-api" {
		return 0, false
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "wayfare-client" {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}

	// Check JTI for revocation
	if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
		isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
		if err == nil && isBlacklisted > 0 {
			return 0, false
		}
	}

	return uint(userID), true
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.requireUser(c)
		if err != nil {
			return nil
		}
		if !user.IsAdmin() {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Wayfare API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
