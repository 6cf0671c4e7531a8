// Command main runs the database seeder for Wayfare.
package main

import (
	"context"
	"flag"
	"log"

	"wayfare/internal/config"
	"wayfare/internal/database"
	"wayfare/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numItineraries := flag.Int("itineraries", 80, "Number of itineraries to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster local runs")
	flag.Parse()

	log.Println("🌱 Wayfare Database Seeder")
	log.Println("==========================")
	log.Printf("Target: %d users, %d posts, %d itineraries, clean=%v\n",
		*numUsers, *numPosts, *numItineraries, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:       *numUsers,
		NumPosts:       *numPosts,
		NumItineraries: *numItineraries,
		ShouldClean:    *shouldClean,
		SkipBcrypt:     *skipBcrypt,
	}
	if err := seed.NewSeeder(db, opts).Run(context.Background(), opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Printf("📧 All seeded users have the password: %s", seed.SeedPassword)
}
