// Package seed populates the database with demo data for development
// and testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"wayfare/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext password every seeded user gets.
const SeedPassword = "Wayfare-demo-1!"

// destinations are "City, Country" strings whose country token resolves
// in the travel statistics aggregator.
var destinations = []string{
	"Paris, France",
	"Tokyo, Japan",
	"Lisbon, Portugal",
	"Cusco, Peru",
	"Marrakech, Morocco",
	"Reykjavik, Iceland",
	"Hanoi, Vietnam",
	"Queenstown, New Zealand",
	"Cartagena, Colombia",
	"Cape Town, South Africa",
	"Kyoto, Japan",
	"Florence, Italy",
	"Santorini, Greece",
	"Bali, Indonesia",
	"Banff, Canada",
	"Petra, Jordan",
	"Zanzibar, Tanzania",
	"Sydney, Australia",
	"Mexico City, Mexico",
	"Seoul, South Korea",
}

var captionOpeners = []string{
	"Golden hour at",
	"Finally made it to",
	"Three days in",
	"Hidden corners of",
	"Last stop:",
	"Sunrise hike above",
	"Street food crawl through",
}

// Factory builds domain entities and persists them. It is a thin helper
// used by the seeder and by tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for demo data
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// BuildUser constructs a user with a profile and hashed password but does
// not persist it. Satellite rows come from the registration path.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
	user := &models.User{
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		Role:     models.RoleMember,
		Active:   true,
		Profile: &models.Profile{
			Username:     username,
			Bio:          gofakeit.Sentence(10),
			ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		},
	}

	if f.opts.SkipBcrypt {
		user.Password = SeedPassword
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildPost constructs a travel post for the given user without
// persisting it. CreatedAt is spread over the recent past so feeds look
// lived-in.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	destination := destinations[f.rng.Intn(len(destinations))]
	opener := captionOpeners[f.rng.Intn(len(captionOpeners))]
	post := &models.Post{
		UserID:   user.ID,
		Caption:  fmt.Sprintf("%s %s", opener, destination),
		Details:  gofakeit.Paragraph(1, 3, 8, "\n"),
		Location: destination,
		ImageLinks: []string{
			fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.UUID()),
		},
		Visibility:      models.VisibilityAll,
		ApprovedByAdmin: true,
		CreatedAt:       f.pastTime(),
	}
	if f.rng.Intn(5) == 0 {
		post.Visibility = models.VisibilityFollowers
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// BuildItinerary constructs a trip plan for the given user without
// persisting it.
func (f *Factory) BuildItinerary(user *models.User, overrides ...func(*models.Itinerary)) *models.Itinerary {
	destination := destinations[f.rng.Intn(len(destinations))]
	itinerary := &models.Itinerary{
		UserID:          user.ID,
		Title:           fmt.Sprintf("%d days in %s", 3+f.rng.Intn(12), destination),
		Description:     gofakeit.Paragraph(1, 4, 10, "\n"),
		Destination:     destination,
		DurationDays:    3 + f.rng.Intn(12),
		MainImageLink:   fmt.Sprintf("https://picsum.photos/seed/trip-%s/1200/800", gofakeit.UUID()),
		Rating:          float64(f.rng.Intn(21)+30) / 10,
		Visibility:      models.VisibilityAll,
		ApprovedByAdmin: true,
		CreatedAt:       f.pastTime(),
	}

	for _, override := range overrides {
		override(itinerary)
	}
	return itinerary
}

// CommentText returns a short comment body.
func (f *Factory) CommentText() string {
	return gofakeit.Sentence(6 + f.rng.Intn(8))
}

func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}
