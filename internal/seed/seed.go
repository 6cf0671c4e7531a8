package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"wayfare/internal/models"
	"wayfare/internal/repository"
	"wayfare/internal/service"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers       int
	NumPosts       int
	NumItineraries int
	// MaxDays bounds how far in the past seeded content is dated.
	MaxDays     int
	ShouldClean bool
	// SkipBcrypt stores the demo password in plaintext for fast local runs.
	SkipBcrypt bool
}

// Seeder populates the database through the repository layer so the
// denormalized counters stay consistent with the edges that justify them.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand

	users       repository.UserRepository
	follows     repository.FollowRepository
	posts       repository.PostRepository
	itineraries repository.ItineraryRepository
	engagements repository.EngagementRepository
	stats       *service.StatisticsService
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	userRepo := repository.NewUserRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	return &Seeder{
		db:          db,
		factory:     NewFactory(db, opts),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
		users:       userRepo,
		follows:     repository.NewFollowRepository(db),
		posts:       repository.NewPostRepository(db),
		itineraries: itineraryRepo,
		engagements: repository.NewEngagementRepository(db),
		stats:       service.NewStatisticsService(statsRepo, itineraryRepo, userRepo),
	}
}

// Run executes a full seeding pass according to opts.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	log.Printf("🌱 Seeding %d users, %d posts, %d itineraries...",
		opts.NumUsers, opts.NumPosts, opts.NumItineraries)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Printf("⚠️  Could not clear existing data, continuing anyway: %v", err)
		}
	}

	users, err := s.SeedSocialMesh(ctx, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("✓ %d users created with a follow mesh", len(users))

	posts, err := s.SeedPosts(ctx, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.SeedItineraries(ctx, users, opts.NumItineraries); err != nil {
		return fmt.Errorf("seed itineraries: %w", err)
	}
	log.Printf("✓ %d itineraries created, travel statistics recomputed", opts.NumItineraries)

	if err := s.SeedEngagement(ctx, users, posts); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}
	log.Println("✓ likes, saves and comments created")

	log.Println("🎉 Seeding complete")
	return nil
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comment_likes, replies, comments, post_likes, post_saves,
		post_shares, itinerary_likes, itinerary_saves, notifications, follows,
		itineraries, posts, statistics, privacy_settings, notification_settings,
		account_settings, profiles, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedSocialMesh creates n users through the registration path and wires
// a random follow mesh between them. Counter updates ride on the follow
// repository, so total_followers and total_following line up with the
// edges.
func (s *Seeder) SeedSocialMesh(ctx context.Context, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := s.factory.BuildUser()
		if err := s.users.CreateWithDefaults(ctx, user); err != nil {
			if isAlreadyExists(err) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}

	// Roughly a fifth of the mesh is private.
	for _, user := range users {
		if s.rng.Intn(5) != 0 {
			continue
		}
		account, _, _, err := s.users.GetSettings(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		account.AccountPrivate = true
		if err := s.users.UpdateAccountSettings(ctx, account); err != nil {
			return nil, err
		}
	}

	if len(users) < 2 {
		return users, nil
	}
	edgesPerUser := len(users) / 5
	if edgesPerUser < 2 {
		edgesPerUser = 2
	}
	for _, follower := range users {
		for i := 0; i < edgesPerUser; i++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			notif := &models.Notification{
				UserID:  target.ID,
				Type:    models.NotificationFollow,
				Content: follower.FullName + " started following you",
				ActorID: &follower.ID,
			}
			err := s.follows.Create(ctx, &models.FollowEdge{
				FollowerID: follower.ID,
				FolloweeID: target.ID,
			}, notif)
			if err != nil && !isAlreadyExists(err) {
				return nil, err
			}
		}
	}
	return users, nil
}

// SeedPosts creates n posts spread across the given users.
func (s *Seeder) SeedPosts(ctx context.Context, users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := s.factory.BuildPost(author)
		if err := s.posts.Create(ctx, post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// SeedItineraries creates n itineraries and then recomputes travel
// statistics for every author, so countries_visited and
// continents_visited reflect the seeded destinations.
func (s *Seeder) SeedItineraries(ctx context.Context, users []*models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	authors := make(map[uint]struct{})
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		itinerary := s.factory.BuildItinerary(author)
		if err := s.itineraries.Create(ctx, itinerary); err != nil {
			return err
		}
		authors[author.ID] = struct{}{}
	}

	for userID := range authors {
		if _, err := s.stats.Recompute(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

// SeedEngagement sprinkles likes, saves, comments and the odd share over
// the given posts. All writes go through the engagement repository, so
// every counter matches its edge rows exactly.
func (s *Seeder) SeedEngagement(ctx context.Context, users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for _, post := range posts {
		audience := s.rng.Intn(len(users))
		for i := 0; i < audience; i++ {
			fan := users[s.rng.Intn(len(users))]
			if fan.ID == post.UserID {
				continue
			}

			notif := &models.Notification{
				UserID:  post.UserID,
				Type:    models.NotificationLike,
				Content: fan.FullName + " liked your post",
				ActorID: &fan.ID,
				PostID:  &post.ID,
			}
			if _, err := s.engagements.Add(ctx, models.KindPostLike, fan.ID, post.ID, notif); err != nil {
				return err
			}

			if s.rng.Intn(3) == 0 {
				if _, err := s.engagements.Add(ctx, models.KindPostSave, fan.ID, post.ID, nil); err != nil {
					return err
				}
			}

			if s.rng.Intn(4) == 0 {
				comment := &models.Comment{
					PostID:  post.ID,
					UserID:  fan.ID,
					Content: s.factory.CommentText(),
				}
				commentNotif := &models.Notification{
					UserID:  post.UserID,
					Type:    models.NotificationComment,
					Content: fan.FullName + " commented on your post",
					ActorID: &fan.ID,
					PostID:  &post.ID,
				}
				if err := s.engagements.CreateComment(ctx, comment, commentNotif); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func isAlreadyExists(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeAlreadyExists
}
