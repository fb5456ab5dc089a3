// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	users := flag.Int("users", 5, "number of users to create")
	posts := flag.Int("posts", 20, "number of posts to create")
	comments := flag.Int("comments", 3, "comments per post")
	reset := flag.Bool("reset", false, "wipe all data before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *reset {
		if err := seed.Reset(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("Database reset")
	}

	opts := seed.Options{
		Users:           *users,
		Posts:           *posts,
		CommentsPerPost: *comments,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d posts, %d comments per post (password %q)",
		opts.Users, opts.Posts, opts.CommentsPerPost, seed.DefaultPassword)
}
